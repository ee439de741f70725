package main

import "github.com/zral/mcp-ws/internal/app"

func main() {
	err := app.NewTravelAgentApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
