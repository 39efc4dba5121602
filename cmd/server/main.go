package main

// @title           Brewlog API
// @version         1.0
// @description     Personal coffee tracking: beans, suppliers, brews, ratings and a public tasting feed
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token
func main() {
	Execute()
}
