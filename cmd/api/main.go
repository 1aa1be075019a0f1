package main

// @title Todo API
// @version 1.0
// @description Create, read, update and delete todos.

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:9089
// @BasePath /
// @schemes http
import (
	_ "todo-api/docs"
	protocol "todo-api/protocal"

	"github.com/sirupsen/logrus"
)

func main() {
	err := protocol.ServeHTTP()
	if err != nil {
		logrus.Fatalln(err)
	}
}
