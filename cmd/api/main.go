package main

import (
	_ "calendar-events/docs"
)

// @title Calendar Events API
// @version 1.0
// @description CRUD service for calendar events with overlap validation.
// @BasePath /
func main() {
	Execute()
}
