package main

import "github.com/jashithrathod04-star/waterbuddy/cmd/waterbuddy"

func main() {
	waterbuddy.Execute()
}
