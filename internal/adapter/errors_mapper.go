package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into one of the package sentinel
// errors. GPGAuth endpoints signal protocol failures through the
// X-GPGAuth-Error header, often alongside a 200 status, so that header is
// checked first.
func mapHTTPError(resp *resty.Response) error {
	if gpgErr := resp.Header().Get("X-GPGAuth-Error"); gpgErr != "" && gpgErr != "false" {
		debug := resp.Header().Get("X-GPGAuth-Debug")
		if debug == "" {
			debug = gpgErr
		}
		return fmt.Errorf("%w: %s", ErrGPGAuthRejected, debug)
	}

	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServerFailure, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
