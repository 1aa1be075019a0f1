package protocal

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"todo-api/configs"
	httpAdapter "todo-api/internal/adapters/input/http"
	"todo-api/internal/application"
	"todo-api/pkg/logger"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	if err := configs.InitViper("./configs", cfg.ENV); err != nil {
		return err
	}
	conf := configs.GetViper()
	logger.Setup(conf.App.Debug, conf.App.Env)
	logrus.WithFields(logrus.Fields{
		"env":     conf.App.Env,
		"storage": conf.App.Storage,
	}).Info("Starting todo-api")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Wire up the hexagonal architecture layers
	// Output adapters (repositories, event publisher)
	deps, err := newDependencies(ctx, conf)
	if err != nil {
		return err
	}
	defer deps.Close()

	// Application services (use cases)
	srv := application.NewTodoService(deps.todos, deps.publisher)
	labelSrv := application.NewLabelService(deps.labels)
	// Input adapter (HTTP handler)
	hdl := httpAdapter.New(srv, labelSrv, deps.pinger)

	app := newApp(hdl)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logrus.Println("Listening on port: ", conf.App.Port)
		return app.Listen(":" + conf.App.Port)
	})
	g.Go(func() error {
		<-gctx.Done()
		logrus.Println("Gracefull shut down ...")
		return app.Shutdown()
	})
	return g.Wait()
}

func newApp(hdl *httpAdapter.HTTPHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "todo-api",
		DisableStartupMessage: true,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))
	app.Use(httpAdapter.AccessLog())

	app.Get("/swagger/*", swagger.HandlerDefault) // default
	httpAdapter.RegisterRoutes(app, hdl)
	return app
}
