// Package handler contains the HTTP layer: it builds the request context for
// the access controller and maps each terminal action to an observable
// response (redirect, password form, challenge page, not-found page).
package handler

import (
	"fmt"
	"html/template"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/herizorandria/go-link-gate/internal/app/service"
	"github.com/herizorandria/go-link-gate/internal/middleware"
	"github.com/herizorandria/go-link-gate/internal/models"
)

type ResolveHandler struct {
	access       service.AccessControllerIface
	gate         *service.PasswordGate
	logger       *zap.Logger
	diversionURL string
}

func NewResolve(access service.AccessControllerIface, gate *service.PasswordGate, logger *zap.Logger, diversionURL string) *ResolveHandler {
	return &ResolveHandler{
		access:       access,
		gate:         gate,
		logger:       logger,
		diversionURL: diversionURL,
	}
}

// Resolve handles GET requests for a short code.
func (h *ResolveHandler) Resolve(res http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")

	action := h.access.ResolveAndAct(req.Context(), code, h.requestContext(req, code, "", false))
	h.dispatch(res, req, action, "")
}

// SubmitPassword handles the password form POST for a gated code.
func (h *ResolveHandler) SubmitPassword(res http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")
	password := req.PostFormValue("password")

	action := h.access.ResolveAndAct(req.Context(), code, h.requestContext(req, code, password, false))
	h.dispatch(res, req, action, password)
}

// VerifyChallenge handles the human-verification form POST. Both gates are
// required: a missing interaction proof and a wrong answer divert the same
// way, so neither sub-step can be skipped.
func (h *ResolveHandler) VerifyChallenge(res http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")

	a, errA := strconv.Atoi(req.PostFormValue("a"))
	b, errB := strconv.Atoi(req.PostFormValue("b"))
	answer, errAnswer := strconv.Atoi(req.PostFormValue("answer"))
	interacted := req.PostFormValue("interacted") == "1"

	if errA != nil || errB != nil || errAnswer != nil || !interacted || answer != a+b {
		http.Redirect(res, req, h.diversionURL, http.StatusFound)
		return
	}

	action := h.access.ResolveAndAct(req.Context(), code, h.requestContext(req, code, "", true))
	h.dispatch(res, req, action, "")
}

// requestContext collects what the pipeline needs from the raw request.
func (h *ResolveHandler) requestContext(req *http.Request, code, password string, challengePassed bool) models.RequestContext {
	unlocked := false
	if cookie, err := req.Cookie(unlockCookieName(code)); err == nil {
		unlocked = h.gate.ValidateUnlock(cookie.Value, code)
	}

	return models.RequestContext{
		UserAgent:       req.UserAgent(),
		IP:              middleware.ClientIP(req),
		Referrer:        req.Referer(),
		Password:        password,
		Unlocked:        unlocked,
		ChallengePassed: challengePassed,
	}
}

// dispatch maps a terminal action to its HTTP response.
func (h *ResolveHandler) dispatch(res http.ResponseWriter, req *http.Request, action models.Action, password string) {
	switch action.Outcome {
	case models.OutcomeNotFound:
		renderNotFound(res)

	case models.OutcomeBotDiverted, models.OutcomeBlocked:
		location := action.Location
		if location == "" {
			location = h.diversionURL
		}
		http.Redirect(res, req, location, http.StatusFound)

	case models.OutcomePasswordRequired:
		renderPasswordForm(res, action.Code, false)

	case models.OutcomePasswordRejected:
		renderPasswordForm(res, action.Code, true)

	case models.OutcomeGranted:
		if password != "" {
			h.issueUnlockCookie(res, action.Code)
		}
		if action.ChallengeRequired {
			renderChallenge(res, action.Code)
			return
		}
		res.Header().Set("Location", action.Location)
		res.WriteHeader(http.StatusTemporaryRedirect)

	default:
		renderNotFound(res)
	}
}

func (h *ResolveHandler) issueUnlockCookie(res http.ResponseWriter, code string) {
	token, err := h.gate.UnlockToken(code)
	if err != nil {
		h.logger.Error("cannot issue unlock token", zap.String("code", code), zap.Error(err))
		return
	}
	http.SetCookie(res, &http.Cookie{
		Name:     unlockCookieName(code),
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}

func unlockCookieName(code string) string {
	return service.UnlockCookieName + "_" + code
}

func renderNotFound(res http.ResponseWriter) {
	res.Header().Set("Content-Type", "text/html; charset=utf-8")
	res.WriteHeader(http.StatusNotFound)
	fmt.Fprint(res, `<!DOCTYPE html><html><head><title>Not found</title></head>`+
		`<body><h1>Link not found</h1><p>This link does not exist.</p></body></html>`)
}

func renderPasswordForm(res http.ResponseWriter, code string, rejected bool) {
	res.Header().Set("Content-Type", "text/html; charset=utf-8")
	if rejected {
		res.WriteHeader(http.StatusUnauthorized)
	} else {
		res.WriteHeader(http.StatusOK)
	}

	errorLine := ""
	if rejected {
		errorLine = `<p class="error">Wrong password, try again.</p>`
	}

	fmt.Fprintf(res, `<!DOCTYPE html><html><head><title>Protected link</title></head><body>`+
		`<h1>This link is protected</h1>%s`+
		`<form method="POST" action="/%s">`+
		`<input type="password" name="password" autofocus>`+
		`<button type="submit">Open</button>`+
		`</form></body></html>`,
		errorLine, template.HTMLEscapeString(code))
}

func renderChallenge(res http.ResponseWriter, code string) {
	a := rand.Intn(9) + 1
	b := rand.Intn(9) + 1

	res.Header().Set("Content-Type", "text/html; charset=utf-8")
	res.WriteHeader(http.StatusOK)

	fmt.Fprintf(res, `<!DOCTYPE html><html><head><title>One more step</title></head><body>`+
		`<h1>Quick check</h1><p>What is %d + %d?</p>`+
		`<form method="POST" action="/%s/verify">`+
		`<input type="hidden" name="a" value="%d">`+
		`<input type="hidden" name="b" value="%d">`+
		`<input type="hidden" name="interacted" value="" id="interacted">`+
		`<input type="text" name="answer" autofocus>`+
		`<button type="submit">Continue</button>`+
		`</form>`+
		`<script>document.addEventListener("pointerdown",function(){document.getElementById("interacted").value="1"},{once:true});`+
		`document.addEventListener("keydown",function(){document.getElementById("interacted").value="1"},{once:true});</script>`+
		`</body></html>`,
		a, b, template.HTMLEscapeString(code), a, b)
}
