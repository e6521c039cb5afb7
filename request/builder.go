// Package request derives client request descriptors from the server entries
// of a loaded OpenAPI document. It builds requests; it never sends them.
package request

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/tobich/oasreq/model"
)

// Descriptor is the resolved, client-library-agnostic form of a server
// endpoint. It is a plain comparable value: two descriptors built from the
// same inputs compare equal with ==.
type Descriptor struct {
	// Scheme is http or https.
	Scheme string

	// Host is the hostname or IP literal, without port or brackets.
	Host string

	// Port is the explicit port from the server URL. Zero means the URL
	// declared none; callers apply protocol defaults themselves.
	Port uint16

	// BasePath always starts with "/" and carries no trailing slash except
	// for the root path itself.
	BasePath string
}

// URL reassembles the descriptor into an absolute URL string. Apart from
// trailing-slash normalization of the base path, the result is equivalent to
// the server's substituted URL template.
func (d Descriptor) URL() string {
	u := url.URL{Scheme: d.Scheme, Host: d.hostport(), Path: d.BasePath}
	return u.String()
}

// NewRequest builds an unsent HTTP request targeting path appended to the
// descriptor's base path. An empty path targets the base path itself. The
// caller hands the result to any HTTP client for execution.
func (d Descriptor) NewRequest(ctx context.Context, method, path string) (*http.Request, error) {
	joined := d.BasePath
	if path != "" {
		joined = strings.TrimRight(d.BasePath, "/") + "/" + strings.TrimLeft(path, "/")
	}
	u := url.URL{Scheme: d.Scheme, Host: d.hostport(), Path: joined}
	return http.NewRequestWithContext(ctx, method, u.String(), nil)
}

func (d Descriptor) hostport() string {
	if d.Port != 0 {
		return net.JoinHostPort(d.Host, strconv.Itoa(int(d.Port)))
	}
	if strings.Contains(d.Host, ":") {
		// IPv6 literal without an explicit port still needs brackets.
		return "[" + d.Host + "]"
	}
	return d.Host
}

// FromServer resolves the server's URL template and splits it into a
// Descriptor. Placeholder values are taken from overrides first, then
// from the variable's declared default; a variable with neither fails.
// Declared enumerations are enforced on whichever value wins. The call is a
// pure function of its inputs and safe for concurrent use.
func FromServer(srv *model.Server, overrides map[string]string) (Descriptor, error) {
	resolved, err := resolveTemplate(srv, overrides)
	if err != nil {
		return Descriptor{}, err
	}
	return parseResolved(resolved)
}

// FromSpecification builds one descriptor per declared server, in document
// order. Overrides apply to every server that references a matching variable.
// The first failing server aborts the build.
func FromSpecification(spec *model.Specification, overrides map[string]string) ([]Descriptor, error) {
	if len(spec.Servers) == 0 {
		return nil, nil
	}
	descriptors := make([]Descriptor, 0, len(spec.Servers))
	for i := range spec.Servers {
		d, err := FromServer(&spec.Servers[i], overrides)
		if err != nil {
			return nil, fmt.Errorf("servers[%d]: %w", i, err)
		}
		descriptors = append(descriptors, d)
	}
	return descriptors, nil
}

func resolveTemplate(srv *model.Server, overrides map[string]string) (string, error) {
	if err := model.CheckURLTemplate(srv.URL); err != nil {
		return "", &MalformedTemplateError{Template: srv.URL, Reason: err.Error()}
	}

	names := srv.Placeholders()
	if len(names) == 0 {
		return srv.URL, nil
	}

	values := make(map[string]string, len(names))
	for _, name := range names {
		value, overridden := overrides[name]
		variable, declared := srv.Variables[name]
		if !overridden {
			if !declared || variable.Default == "" {
				return "", &UnresolvedVariableError{Name: name}
			}
			value = variable.Default
		}
		if declared && len(variable.Enum) > 0 && !slices.Contains(variable.Enum, value) {
			return "", &InvalidValueError{Name: name, Value: value, Allowed: variable.Enum}
		}
		values[name] = value
	}

	return srv.ExpandURL(values), nil
}

func parseResolved(resolved string) (Descriptor, error) {
	u, err := url.Parse(resolved)
	if err != nil {
		return Descriptor{}, &MalformedURLError{URL: resolved, Reason: "not a valid URL", Err: err}
	}
	if !u.IsAbs() {
		return Descriptor{}, &MalformedURLError{URL: resolved, Reason: "relative URLs are not supported"}
	}
	switch u.Scheme {
	case "http", "https":
	default:
		return Descriptor{}, &MalformedURLError{URL: resolved, Reason: fmt.Sprintf("unsupported scheme %q", u.Scheme)}
	}
	if u.Hostname() == "" {
		return Descriptor{}, &MalformedURLError{URL: resolved, Reason: "missing host"}
	}

	var port uint16
	if p := u.Port(); p != "" {
		n, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return Descriptor{}, &MalformedURLError{URL: resolved, Reason: fmt.Sprintf("invalid port %q", p), Err: err}
		}
		if n == 0 {
			return Descriptor{}, &MalformedURLError{URL: resolved, Reason: "port 0 is not a usable port"}
		}
		port = uint16(n)
	}

	return Descriptor{
		Scheme:   u.Scheme,
		Host:     u.Hostname(),
		Port:     port,
		BasePath: normalizeBasePath(u.Path),
	}, nil
}

// normalizeBasePath maps the empty path to "/" and strips trailing slashes
// beyond the root. This is the only place the descriptor deviates from the
// substituted template.
func normalizeBasePath(p string) string {
	p = strings.TrimRight(p, "/")
	if p == "" {
		return "/"
	}
	return p
}
