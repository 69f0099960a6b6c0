package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()
	router.HandlerFunc(http.MethodGet, "/status", app.statusHandler)
	router.HandlerFunc(http.MethodGet, "/status.xml", app.statusXMLHandler)
	router.HandlerFunc(http.MethodGet, "/lines", app.linesHandler)
	router.GET("/lines/:id", app.lineHandler)
	router.HandlerFunc(http.MethodGet, "/stations", app.stationsHandler)
	router.GET("/station-groups/:name", app.stationGroupHandler)

	return router
}
