package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/bnema/hoist/internal/domain"
	"github.com/bnema/hoist/pkg/bytesize"
)

var (
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
	titleColor   = color.New(color.FgCyan, color.Bold)
	mutedColor   = color.New(color.FgHiBlack)
)

var cliWriteLine = func(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

func cliRenderTitle(msg string) string {
	return titleColor.Sprint(msg)
}

func cliRenderMuted(msg string) string {
	return mutedColor.Sprint(msg)
}

func cliRenderSuccess(msg string) string {
	return successColor.Sprint("✓ " + msg)
}

func cliRenderWarning(msg string) string {
	return warningColor.Sprint("! " + msg)
}

func cliRenderError(msg string) string {
	return errorColor.Sprint("✗ " + msg)
}

func cliRenderMeta(label, value string) string {
	return label + " " + cliRenderMuted(value)
}

func renderGates(w io.Writer, report domain.GateReport) {
	if len(report.Results) == 0 {
		_ = cliWriteLine(w, cliRenderMuted("no gates configured"))
		return
	}
	_ = cliWriteLine(w, cliRenderTitle("Gates"))
	for _, g := range report.Results {
		line := fmt.Sprintf("%s %s", g.Name, cliRenderMuted(roundDuration(g.Duration)))
		if g.Passed {
			_ = cliWriteLine(w, "  "+cliRenderSuccess(line))
			continue
		}
		detail := fmt.Sprintf("exit %d", g.ExitCode)
		if g.Err != nil {
			detail = g.Err.Error()
		}
		_ = cliWriteLine(w, "  "+cliRenderError(line+" "+detail))
	}
}

func renderBuilds(w io.Writer, results []domain.BuildResult) {
	_ = cliWriteLine(w, cliRenderTitle("Builds"))
	for _, r := range results {
		line := fmt.Sprintf("%s %s", r.Platform, cliRenderMuted(roundDuration(r.Duration)))
		if r.Succeeded() {
			if r.Archive != nil {
				line += " " + cliRenderMuted(fmt.Sprintf("%s (%s)", r.Archive.Name, bytesize.Format(r.Archive.Size)))
			}
			_ = cliWriteLine(w, "  "+cliRenderSuccess(line))
			continue
		}
		_ = cliWriteLine(w, "  "+cliRenderError(fmt.Sprintf("%s %v", line, r.Err)))
	}
}

func renderManifests(w io.Writer, lists []domain.ManifestList) {
	_ = cliWriteLine(w, cliRenderTitle("Published"))
	for _, m := range lists {
		_ = cliWriteLine(w, "  "+cliRenderSuccess(cliRenderMeta(m.Ref, m.Descriptor.Digest)))
		for _, member := range m.Members {
			_ = cliWriteLine(w, "    "+cliRenderMuted(member.Platform.String()+" "+member.Ref))
		}
	}
}

func renderSkip(w io.Writer, reason domain.SkipReason) {
	_ = cliWriteLine(w, cliRenderWarning("publishing skipped: "+string(reason)))
}

func roundDuration(d time.Duration) string {
	return d.Round(100 * time.Millisecond).String()
}
