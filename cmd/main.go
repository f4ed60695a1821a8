// cmd/main.go
package main

import (
	"go-taskboard-api/app"
)

// @title           Task Board API
// @version         1.0
// @description     Collaborative task board backend with token-based authentication.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
