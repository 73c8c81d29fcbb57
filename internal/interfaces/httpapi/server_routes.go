package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/participants", handler.ListLeagueParticipants)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedLeagueRoutes(mux, handler, verifier)
	registerAuthorizedPartnershipRoutes(mux, handler, verifier)
	registerAuthorizedChallengeRoutes(mux, handler, verifier)
	registerAuthorizedMessageRoutes(mux, handler, verifier)
	registerAuthorizedProfileRoutes(mux, handler, verifier)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/sweep-status", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunStatusSweep)))
}

func registerAuthorizedLeagueRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/leagues", RequireAuth(verifier, http.HandlerFunc(handler.CreateLeague)))
	mux.Handle("GET /v1/leagues/{leagueID}/eligibility", RequireAuth(verifier, http.HandlerFunc(handler.CheckEligibility)))
	mux.Handle("POST /v1/leagues/{leagueID}/registrations", RequireAuth(verifier, http.HandlerFunc(handler.Register)))
}

func registerAuthorizedPartnershipRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/partnerships", RequireAuth(verifier, http.HandlerFunc(handler.CreatePartnership)))
	mux.Handle("GET /v1/partnerships/me", RequireAuth(verifier, http.HandlerFunc(handler.GetActivePartnership)))
	mux.Handle("DELETE /v1/partnerships/{partnershipID}", RequireAuth(verifier, http.HandlerFunc(handler.DissolvePartnership)))
}

func registerAuthorizedChallengeRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/challenges", RequireAuth(verifier, http.HandlerFunc(handler.CreateChallenge)))
	mux.Handle("GET /v1/challenges", RequireAuth(verifier, http.HandlerFunc(handler.ListMyChallenges)))
	mux.Handle("POST /v1/challenges/{challengeID}/accept", RequireAuth(verifier, http.HandlerFunc(handler.AcceptChallenge)))
	mux.Handle("POST /v1/challenges/{challengeID}/reject", RequireAuth(verifier, http.HandlerFunc(handler.RejectChallenge)))
	mux.Handle("POST /v1/challenges/{challengeID}/complete", RequireAuth(verifier, http.HandlerFunc(handler.CompleteChallenge)))
	mux.Handle("POST /v1/challenges/{challengeID}/dispute", RequireAuth(verifier, http.HandlerFunc(handler.DisputeChallenge)))
}

func registerAuthorizedMessageRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/messages", RequireAuth(verifier, http.HandlerFunc(handler.SendMessage)))
	mux.Handle("GET /v1/messages/unread-count", RequireAuth(verifier, http.HandlerFunc(handler.GetUnreadCount)))
	mux.Handle("GET /v1/messages/conversations/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.GetConversation)))
}

func registerAuthorizedProfileRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/profiles/me", RequireAuth(verifier, http.HandlerFunc(handler.GetMyProfile)))
	mux.Handle("PUT /v1/profiles/me", RequireAuth(verifier, http.HandlerFunc(handler.UpdateMyProfile)))
}
