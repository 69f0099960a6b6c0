package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/matsadler/tube"
)

func (app *application) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := app.service.Status()
	if status == nil {
		app.noSnapshotResponse(w, r)
		return
	}
	app.sendJSON(w, r, status)
}

func (app *application) statusXMLHandler(w http.ResponseWriter, r *http.Request) {
	status := app.service.Status()
	if status == nil {
		app.noSnapshotResponse(w, r)
		return
	}
	app.sendXML(w, r, status)
}

func (app *application) linesHandler(w http.ResponseWriter, r *http.Request) {
	status := app.service.Status()
	if status == nil {
		app.noSnapshotResponse(w, r)
		return
	}
	app.sendJSON(w, r, status.Lines)
}

// lineHandler resolves :id first as an exact identifier, then as a fuzzy
// name, so /lines/waterlooandcity and /lines/waterloo%20and%20city both
// work.
func (app *application) lineHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	status := app.service.Status()
	if status == nil {
		app.noSnapshotResponse(w, r)
		return
	}

	id := ps.ByName("id")
	line := status.Line(tube.Exact(id))
	if line == nil {
		line = status.Line(tube.Fuzzy(id))
	}
	if line == nil {
		app.notFoundResponse(w, r)
		return
	}
	app.sendJSON(w, r, line)
}

// stationsHandler returns every station, or those matching the q
// parameter.
func (app *application) stationsHandler(w http.ResponseWriter, r *http.Request) {
	status := app.service.Status()
	if status == nil {
		app.noSnapshotResponse(w, r)
		return
	}

	var query tube.Query
	if q := r.URL.Query().Get("q"); q != "" {
		query = tube.Fuzzy(q)
	}
	stations := status.FindStations(query)
	if stations == nil {
		stations = []tube.Station{}
	}
	app.sendJSON(w, r, stations)
}

func (app *application) stationGroupHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	status := app.service.Status()
	if status == nil {
		app.noSnapshotResponse(w, r)
		return
	}

	group := status.StationGroup(tube.Fuzzy(ps.ByName("name")))
	if group == nil {
		app.notFoundResponse(w, r)
		return
	}
	app.sendJSON(w, r, group)
}
