// Package report writes run reports as YAML documents.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/zerowrap"
	"gopkg.in/yaml.v3"

	"github.com/bnema/hoist/internal/domain"
)

// YAMLWriter implements out.ReportWriter by writing one file per run.
type YAMLWriter struct {
	path string
	now  func() time.Time
}

// NewYAMLWriter creates a writer targeting path. The file is replaced on
// every run.
func NewYAMLWriter(path string) *YAMLWriter {
	return &YAMLWriter{path: path, now: time.Now}
}

type runDoc struct {
	RunID      string        `yaml:"run_id"`
	Ref        string        `yaml:"ref"`
	Outcome    string        `yaml:"outcome"`
	SkipReason string        `yaml:"skip_reason,omitempty"`
	Error      string        `yaml:"error,omitempty"`
	Tags       []string      `yaml:"tags"`
	Gates      []gateDoc     `yaml:"gates,omitempty"`
	Builds     []buildDoc    `yaml:"builds,omitempty"`
	Manifests  []manifestDoc `yaml:"manifests,omitempty"`
	WrittenAt  time.Time     `yaml:"written_at"`
}

type gateDoc struct {
	Name     string `yaml:"name"`
	Passed   bool   `yaml:"passed"`
	ExitCode int    `yaml:"exit_code"`
	Duration string `yaml:"duration"`
	Error    string `yaml:"error,omitempty"`
}

type buildDoc struct {
	Platform string `yaml:"platform"`
	Status   string `yaml:"status"`
	Image    string `yaml:"image,omitempty"`
	Archive  string `yaml:"archive,omitempty"`
	Size     int64  `yaml:"size,omitempty"`
	Duration string `yaml:"duration"`
	Error    string `yaml:"error,omitempty"`
}

type manifestDoc struct {
	Tag     string   `yaml:"tag"`
	Ref     string   `yaml:"ref"`
	Digest  string   `yaml:"digest,omitempty"`
	Members []string `yaml:"members"`
}

// WriteReport encodes the report and atomically replaces the report file.
func (w *YAMLWriter) WriteReport(ctx context.Context, report domain.RunReport) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "report",
		zerowrap.FieldAction:  "WriteReport",
		zerowrap.FieldPath:    w.path,
	})
	log := zerowrap.FromCtx(ctx)

	data, err := yaml.Marshal(toDoc(report, w.now()))
	if err != nil {
		return log.WrapErr(err, "failed to encode report")
	}

	if err := os.MkdirAll(filepath.Dir(w.path), 0o750); err != nil {
		return log.WrapErr(err, "failed to create report directory")
	}

	tmp := w.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return log.WrapErr(err, "failed to write report")
	}
	if err := os.Rename(tmp, w.path); err != nil {
		_ = os.Remove(tmp)
		return log.WrapErr(err, "failed to finalize report")
	}

	log.Debug().Msg("run report written")
	return nil
}

func toDoc(r domain.RunReport, now time.Time) runDoc {
	doc := runDoc{
		RunID:      r.RunID,
		Ref:        r.Ref,
		Outcome:    string(r.Outcome),
		SkipReason: string(r.SkipReason),
		Error:      errString(r.Err),
		Tags:       make([]string, 0, len(r.Tags)),
		WrittenAt:  now.UTC(),
	}
	for _, t := range r.Tags {
		doc.Tags = append(doc.Tags, string(t))
	}
	for _, g := range r.Gates.Results {
		doc.Gates = append(doc.Gates, gateDoc{
			Name:     g.Name,
			Passed:   g.Passed,
			ExitCode: g.ExitCode,
			Duration: g.Duration.String(),
			Error:    errString(g.Err),
		})
	}
	for _, b := range r.Builds {
		bd := buildDoc{
			Platform: b.Platform.String(),
			Status:   string(b.Status),
			Image:    b.LocalRef,
			Duration: b.Duration.String(),
			Error:    errString(b.Err),
		}
		if b.Archive != nil {
			bd.Archive = b.Archive.Name
			bd.Size = b.Archive.Size
		}
		doc.Builds = append(doc.Builds, bd)
	}
	for _, m := range r.Manifests {
		md := manifestDoc{Tag: string(m.Tag), Ref: m.Ref, Digest: m.Descriptor.Digest}
		for _, member := range m.Members {
			md.Members = append(md.Members, member.Ref)
		}
		doc.Manifests = append(doc.Manifests, md)
	}
	return doc
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprint(err)
}
