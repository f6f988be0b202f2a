// Package events decodes the host package manager's lifecycle event stream.
package events

import (
	"bufio"
	"encoding/json"
	"io"
	"iter"
	"strings"

	"go.trai.ch/scaffold/internal/core/domain"
	"go.trai.ch/zerr"
)

// Event names emitted by the host, as Composer names its script events.
const (
	PostPackageInstall   = "post-package-install"
	PostPackageUpdate    = "post-package-update"
	PostPackageUninstall = "post-package-uninstall"
	PostInstallCmd       = "post-install-cmd"
	PostUpdateCmd        = "post-update-cmd"
)

const maxLineSize = 1024 * 1024

// record is the wire form of one event line.
type record struct {
	Event   string          `json:"event"`
	Package *domain.Package `json:"package"`
	Initial *domain.Package `json:"initial"`
	Target  *domain.Package `json:"target"`
}

// Decode returns an iterator over the events in r, one JSON object per line.
// Blank lines are skipped. Iteration stops after the first error.
func Decode(r io.Reader) iter.Seq2[domain.Event, error] {
	return func(yield func(domain.Event, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

		line := 0
		for scanner.Scan() {
			line++
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}

			ev, err := decodeLine([]byte(text))
			if err != nil {
				yield(nil, zerr.With(err, "line", line))
				return
			}
			if !yield(ev, nil) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			yield(nil, zerr.Wrap(err, "failed to read event stream"))
		}
	}
}

func decodeLine(data []byte) (domain.Event, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.Wrap(err, "failed to parse event")
	}

	switch rec.Event {
	case PostPackageInstall:
		pkg, err := requirePackage(rec.Package, rec.Event, "package")
		if err != nil {
			return nil, err
		}
		return domain.OperationEvent{Operation: domain.InstallOperation{Package: *pkg}}, nil
	case PostPackageUpdate:
		target, err := requirePackage(rec.Target, rec.Event, "target")
		if err != nil {
			return nil, err
		}
		op := domain.UpdateOperation{Target: *target}
		if rec.Initial != nil {
			op.Initial = *rec.Initial
		}
		return domain.OperationEvent{Operation: op}, nil
	case PostPackageUninstall:
		pkg, err := requirePackage(rec.Package, rec.Event, "package")
		if err != nil {
			return nil, err
		}
		return domain.OperationEvent{Operation: domain.UninstallOperation{Package: *pkg}}, nil
	case PostInstallCmd, PostUpdateCmd:
		return domain.CommandEvent{Name: rec.Event}, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownEvent, "failed to decode event"), "event", rec.Event)
	}
}

func requirePackage(pkg *domain.Package, event, field string) (*domain.Package, error) {
	if pkg == nil || pkg.Name == "" {
		err := zerr.With(zerr.New("event is missing its package"), "event", event)
		return nil, zerr.With(err, "field", field)
	}
	return pkg, nil
}
