package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)

	mux := pat.New()

	// Listings (in-memory catalog)
	mux.Post("/api/listings/query", standardMiddleware.ThenFunc(app.listingHandler.QueryListings))
	mux.Get("/api/listings/facets", standardMiddleware.ThenFunc(app.listingHandler.GetFacets))
	mux.Get("/api/listings/:id", standardMiddleware.ThenFunc(app.listingHandler.GetListing))
	mux.Get("/api/listings", standardMiddleware.ThenFunc(app.listingHandler.ListListings))
	mux.Get("/api/features/suggest", standardMiddleware.ThenFunc(app.listingHandler.SuggestFeatures))

	// Preferences
	mux.Post("/api/preferences", standardMiddleware.ThenFunc(app.preferencesHandler.SavePreferences))
	mux.Get("/api/preferences/:user_id", standardMiddleware.ThenFunc(app.preferencesHandler.GetPreferences))
	mux.Del("/api/preferences/:user_id", standardMiddleware.ThenFunc(app.preferencesHandler.DeletePreferences))

	// Saved listings
	mux.Post("/api/saved", standardMiddleware.ThenFunc(app.savedHandler.SaveListing))
	mux.Get("/api/saved/:user_id", standardMiddleware.ThenFunc(app.savedHandler.ListSaved))
	mux.Del("/api/saved/:user_id/:listing_id", standardMiddleware.ThenFunc(app.savedHandler.UnsaveListing))

	// Viewed listings
	mux.Post("/api/viewed", standardMiddleware.ThenFunc(app.viewedHandler.MarkViewed))
	mux.Get("/api/viewed/:user_id", standardMiddleware.ThenFunc(app.viewedHandler.ListViewed))

	// Groups
	mux.Get("/api/group/my", standardMiddleware.ThenFunc(app.groupHandler.GetMyGroup))
	mux.Post("/api/group/create", standardMiddleware.ThenFunc(app.groupHandler.CreateGroup))
	mux.Post("/api/group/saved", standardMiddleware.ThenFunc(app.groupHandler.SaveForGroup))
	mux.Get("/api/group/saved/:group_id", standardMiddleware.ThenFunc(app.groupHandler.ListGroupSaved))
	mux.Del("/api/group/saved/:group_id/:listing_id", standardMiddleware.ThenFunc(app.groupHandler.DeleteGroupSaved))

	// Invites
	mux.Post("/api/invites", standardMiddleware.ThenFunc(app.inviteHandler.CreateInvite))
	mux.Post("/api/invites/:invite_code/accept", standardMiddleware.ThenFunc(app.inviteHandler.AcceptInvite))
	mux.Get("/api/invites/:invite_code", standardMiddleware.ThenFunc(app.inviteHandler.GetInvite))

	// Smart-filter analytics
	mux.Post("/api/smart_filters/track", standardMiddleware.ThenFunc(app.usageHandler.TrackUsage))
	mux.Get("/api/smart_filters/analytics", standardMiddleware.ThenFunc(app.usageHandler.GetAnalytics))
	mux.Get("/api/smart_filters/user/:user_id", standardMiddleware.ThenFunc(app.usageHandler.GetUserHistory))

	// Listing Q&A
	mux.Post("/api/ask-ai", standardMiddleware.ThenFunc(app.assistantHandler.Ask))

	// Liveness
	mux.Get("/", alice.New(app.recoverPanic, app.logRequest, secureHeaders).ThenFunc(app.health))

	return standardMiddleware.Then(mux)
}

func (app *application) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("Lion Lease backend is running"))
}
