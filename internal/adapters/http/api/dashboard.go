// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// dashboardHandler serves the embedded dashboard page.
type dashboardHandler struct{}

// newDashboardHandler creates a new dashboard handler.
func newDashboardHandler() *dashboardHandler {
	return &dashboardHandler{}
}

// HandleDashboard handles GET / requests. The page is a static shell;
// all numbers come from the JSON endpoints, so display rounding lives
// entirely in the browser.
func (h *dashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.ServeFileFS(w, r, dashboardFS, "dashboard.html")
}
