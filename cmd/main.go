// cmd/main.go
package main

import (
	"go-transactions-api/app"
)

// @title           Transactions Dashboard API
// @version         1.0
// @description     Seeds a product transaction dataset and serves listing, statistics and chart endpoints.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
func main() {
	app.Run()
}
