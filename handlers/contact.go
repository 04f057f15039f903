package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"binarybyte_site/models"
	"binarybyte_site/services/intake"
	"binarybyte_site/templates/components"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

// successRepoll is how soon a success panel asks again when the reset has not
// happened yet
const successRepoll = 500 * time.Millisecond

func (s *Site) openForm(surface intake.Surface) *intake.Form {
	form := s.Forms.Open(surface)
	s.Metrics.ObserveFormOpened(string(surface))
	return form
}

func surfaceParam(c echo.Context) intake.Surface {
	surface := intake.Surface(c.FormValue("surface"))
	if !surface.IsValid() {
		return intake.SurfaceInline
	}
	return surface
}

func bindLead(c echo.Context) (models.LeadSubmission, error) {
	var lead models.LeadSubmission
	err := (&echo.DefaultBinder{}).BindBody(c, &lead)
	return lead, err
}

func fragment(c echo.Context, status int, build func(ctx context.Context) g.Node) error {
	return render(c, status, components.Component(build))
}

// formError maps state machine refusals to HTTP statuses
func formError(err error) error {
	switch {
	case errors.Is(err, intake.ErrBusy),
		errors.Is(err, intake.ErrAlreadySubmitted),
		errors.Is(err, intake.ErrCloseWhileSubmitting):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, intake.ErrClosed):
		return echo.NewHTTPError(http.StatusGone, err.Error())
	case errors.Is(err, intake.ErrNotDismissible):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return err
}

// closeModal empties the modal root and tells the page to close the dialog
func closeModal(c echo.Context) error {
	c.Response().Header().Set("HX-Retarget", "#modal-root")
	c.Response().Header().Set("HX-Reswap", "innerHTML")
	trigger(c, EventContactModalClose)
	return c.HTML(http.StatusOK, "")
}

// renderForm answers a form post. htmx gets the form container; a plain post
// gets the whole home page around it.
func (s *Site) renderForm(c echo.Context, status int, snap intake.Snapshot, captchaFailed bool) error {
	if !isHTMX(c) {
		return render(c, status, s.homePage(c, snap, captchaFailed))
	}
	view := s.formView(snap)
	view.CaptchaFailed = captchaFailed
	return fragment(c, status, func(ctx context.Context) g.Node {
		return components.LeadForm(ctx, view)
	})
}

// ContactModal opens a fresh modal form instance
func (s *Site) ContactModal(c echo.Context) error {
	if !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, "/#contact")
	}
	view := s.formView(s.openForm(intake.SurfaceModal).Snapshot())
	return fragment(c, http.StatusOK, func(ctx context.Context) g.Node {
		return components.ContactModal(ctx, view)
	})
}

// ContactFormState is polled by the success panel. Once the deferred reset
// ran, an inline form comes back blank and a modal form closes.
func (s *Site) ContactFormState(c echo.Context) error {
	if !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, "/#contact")
	}

	form, ok := s.Forms.Get(c.Param("id"))
	if !ok {
		if surfaceParam(c) == intake.SurfaceModal {
			return closeModal(c)
		}
		form = s.openForm(intake.SurfaceInline)
	}
	form.Touch()
	snap := form.Snapshot()

	switch {
	case snap.State == intake.StateSuccess:
		view := s.formView(snap)
		view.ResetDelay = successRepoll
		return fragment(c, http.StatusOK, func(ctx context.Context) g.Node {
			return components.LeadForm(ctx, view)
		})
	case snap.Closed && snap.Surface == intake.SurfaceModal:
		s.Forms.Discard(snap.ID)
		return closeModal(c)
	case snap.Closed:
		s.Forms.Discard(snap.ID)
		snap = s.openForm(intake.SurfaceInline).Snapshot()
	}
	return s.renderForm(c, http.StatusOK, snap, false)
}

// ContactFormFields applies the latest field values and returns fresh
// validation messages and submit button state
func (s *Site) ContactFormFields(c echo.Context) error {
	lead, err := bindLead(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	form, ok := s.Forms.Get(c.Param("id"))
	if !ok {
		if !isHTMX(c) {
			return echo.NewHTTPError(http.StatusGone, "form expired")
		}
		return s.replaceExpiredForm(c, lead)
	}

	snap, err := form.Update(lead)
	if err != nil {
		return formError(err)
	}
	return fragment(c, http.StatusOK, func(ctx context.Context) g.Node {
		return components.FieldFeedback(ctx, snap)
	})
}

// replaceExpiredForm swaps a fresh instance carrying the typed values in
// place of a form whose instance is gone, e.g. a page restored from the
// back/forward cache after it was swept.
func (s *Site) replaceExpiredForm(c echo.Context, lead models.LeadSubmission) error {
	staleID := c.Param("id")
	snap, err := s.openForm(surfaceParam(c)).Update(lead)
	if err != nil {
		return formError(err)
	}
	c.Response().Header().Set("HX-Retarget", "#"+components.FormContainerID(staleID))
	c.Response().Header().Set("HX-Reswap", "outerHTML")
	return s.renderForm(c, http.StatusOK, snap, false)
}

// ContactFormSubmit validates and transmits the lead
func (s *Site) ContactFormSubmit(c echo.Context) error {
	lead, err := bindLead(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	form, ok := s.Forms.Get(c.Param("id"))
	if !ok {
		// The instance was swept; carry on with a fresh one and the posted values
		form = s.openForm(surfaceParam(c))
	}

	snap, err := form.Update(lead)
	if err != nil {
		return formError(err)
	}

	if s.VerifyCaptcha != nil && snap.CanSubmit() {
		passed, err := s.VerifyCaptcha(c.Request().Context(), c.FormValue("cf-turnstile-response"), c.RealIP())
		if err != nil {
			c.Logger().Errorf("Turnstile verification error: %v", err)
		}
		if !passed {
			return s.renderForm(c, http.StatusUnprocessableEntity, snap, true)
		}
	}

	snap, err = form.Submit(c.Request().Context())
	var transportErr *intake.TransportError
	switch {
	case err == nil:
		c.Logger().Infof("Lead submitted from %s form %s", snap.Surface, snap.ID)
		trigger(c, EventContactSubmitted)
		return s.renderForm(c, http.StatusOK, snap, false)
	case errors.Is(err, intake.ErrInvalid):
		for field := range snap.Errors {
			s.Metrics.ObserveValidationFailure(string(field))
		}
		return s.renderForm(c, http.StatusUnprocessableEntity, snap, false)
	case errors.As(err, &transportErr):
		c.Logger().Errorf("Lead submission failed for form %s: %v", snap.ID, transportErr.Err)
		return s.renderForm(c, http.StatusBadGateway, snap, false)
	default:
		return formError(err)
	}
}

// ContactFormClose dismisses a modal form. It is refused while a submission
// is in flight so the dialog stays open.
func (s *Site) ContactFormClose(c echo.Context) error {
	form, ok := s.Forms.Get(c.Param("id"))
	if !ok {
		return closeModal(c)
	}
	if err := form.Close(); err != nil {
		return formError(err)
	}
	s.Forms.Discard(form.ID())
	return closeModal(c)
}

// ContactFormTeardown releases an instance when its page goes away
func (s *Site) ContactFormTeardown(c echo.Context) error {
	s.Forms.Discard(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
