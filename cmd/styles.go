package cmd

import (
	"fmt"
	"strings"

	"facet-reconciler/core/reconcile"
	"facet-reconciler/core/sdk"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by all plan and result output.
const (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// TitleStyle is for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary text.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle marks modules that need no change.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// WarningStyle marks planned actions.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// FieldStyle is for field identifiers and SDK ids.
	FieldStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	moduleStyle = lipgloss.NewStyle().
			Bold(true).
			PaddingLeft(2)

	detailStyle = lipgloss.NewStyle().
			PaddingLeft(4)
)

// renderResult formats the reconciliation of one module.
func renderResult(r *reconcile.Result) string {
	var b strings.Builder
	b.WriteString(moduleStyle.Render(fmt.Sprintf("%s (%s)", r.Module, r.Platform)))
	b.WriteString("\n")

	if len(r.AdditionalArguments) == 0 {
		b.WriteString(detailStyle.Render(SubtitleStyle.Render("no additional arguments")))
		b.WriteString("\n")
	}
	for _, a := range r.AdditionalArguments {
		b.WriteString(detailStyle.Render(FieldStyle.Render(string(a.Field)) + " = " + a.Value.String()))
		b.WriteString("\n")
	}
	if len(r.PluginOptions) > 0 {
		b.WriteString(detailStyle.Render(SubtitleStyle.Render("plugin options: ") + strings.Join(r.PluginOptions, ", ")))
		b.WriteString("\n")
	}

	b.WriteString(detailStyle.Render(SubtitleStyle.Render("sdk: ") + renderDecision(r.Sdk)))
	b.WriteString("\n")
	return b.String()
}

func renderDecision(d sdk.Decision) string {
	out := string(d.Action)
	if d.Sdk != nil {
		out += " " + FieldStyle.Render(d.Sdk.ID)
	}
	if d.Strategy != "" {
		out += SubtitleStyle.Render(" via " + d.Strategy)
	}
	return out
}

// renderPlan formats a project plan: every module result, the planned
// actions and the summary.
func renderPlan(plan *reconcile.ReconcilePlan) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Project " + plan.Project))
	b.WriteString("\n\n")

	for i := range plan.Results {
		b.WriteString(renderResult(&plan.Results[i]))
	}
	b.WriteString("\n")

	if len(plan.Actions) == 0 {
		b.WriteString(SuccessStyle.Render("Nothing to do."))
		b.WriteString("\n")
	} else {
		b.WriteString(TitleStyle.Render("Actions"))
		b.WriteString("\n")
		for _, a := range plan.Actions {
			line := fmt.Sprintf("%s %s", WarningStyle.Render(string(a.Type)), a.Module)
			if a.SdkID != "" {
				line += " -> " + FieldStyle.Render(a.SdkID)
			}
			if a.Reason != "" {
				line += SubtitleStyle.Render(" (" + a.Reason + ")")
			}
			b.WriteString(moduleStyle.Render(line))
			b.WriteString("\n")
		}
	}

	s := plan.Summary
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf(
		"%d modules, %d with additional arguments, %d settings changes, %d sdk assignments, %d inherits, %d skipped",
		s.TotalModules, s.WithAdditionalArguments, s.SettingsChanges, s.SdkAssignments, s.SdkInherits, s.SdkSkipped,
	)))
	b.WriteString("\n")
	return b.String()
}
