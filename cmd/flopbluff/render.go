package main

import (
	"fmt"
	"io"
	"math/bits"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/flopbluff/classification"
	"github.com/lox/flopbluff/internal/scan"
	"github.com/lox/flopbluff/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	boardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	yesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	noStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("9"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func yesNo(b bool) string {
	if b {
		return yesStyle.Render("yes")
	}
	return noStyle.Render("no")
}

type checkResult struct {
	Hole        classification.HoleCards
	Board       []poker.Card
	Requirement classification.Requirement
	Straight    bool
	Flush       bool
	Bluff       bool
}

func renderCheck(w io.Writer, r checkResult) {
	fmt.Fprintf(w, "%s %s  %s %s\n\n",
		headerStyle.Render("hole"), handStyle.Render(r.Hole.String()),
		headerStyle.Render("board"), boardStyle.Render(poker.FormatCards(r.Board)))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "three to a straight (%s)\t%s\n", r.Requirement, yesNo(r.Straight))
	fmt.Fprintf(tw, "three to a flush (%s)\t%s\n", r.Requirement, yesNo(r.Flush))
	fmt.Fprintf(tw, "made hand\t%s\n", describe(append(r.Hole[:], r.Board...)))
	fmt.Fprintf(tw, "bluff candidate\t%s\n", yesNo(r.Bluff))
	tw.Flush()
}

func renderProfile(w io.Writer, p classification.Profile) {
	fmt.Fprintf(w, "%s %s  %s\n\n",
		headerStyle.Render("hand"), handStyle.Render(p.Hand.String()), describe(p.Hand[:]))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		headerStyle.Render("requirement"), headerStyle.Render("straight"), headerStyle.Render("flush"))
	for _, req := range classification.Requirements {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", req, yesNo(p.ThreeToStraight(req)), yesNo(p.ThreeToFlush(req)))
	}
	tw.Flush()

	fmt.Fprintf(w, "\nno pair: %s  bluff candidate: %s\n", yesNo(p.NoPair), yesNo(p.Bluff))
}

func renderCandidates(w io.Writer, board []poker.Card, hands []poker.StartingHand) {
	fmt.Fprintf(w, "%s %s\n", headerStyle.Render("board"), boardStyle.Render(poker.FormatCards(board)))
	if len(hands) == 0 {
		fmt.Fprintf(w, "no bluff candidates\n")
		if n := bits.OnesCount16(poker.NewHand(board...).GetSuitMask(poker.Spades)); n != 1 {
			fmt.Fprintf(w, "%s\n", dimStyle.Render(fmt.Sprintf(
				"suited catalog hands are two spades, so with %d spades on the flop none can draw to a flush with both cards", n)))
		}
		fmt.Fprintln(w)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		headerStyle.Render("hand"), headerStyle.Render("cards"), headerStyle.Render("made hand"))
	for _, h := range hands {
		cards := append(h.Cards[:], board...)
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			handStyle.Render(h.Label), poker.FormatCards(h.Cards[:]), describe(cards))
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func renderScan(w io.Writer, report scan.Report) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("board"), headerStyle.Render("cards"),
		headerStyle.Render("count"), headerStyle.Render("candidates"))
	for _, res := range report.Results {
		labels := make([]string, len(res.Candidates))
		for i, h := range res.Candidates {
			labels[i] = h.Label
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n",
			res.Board.Name, boardStyle.Render(poker.FormatCards(res.Board.Cards)),
			len(res.Candidates), handStyle.Render(strings.Join(labels, " ")))
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d candidates on %d boards\n", report.Total(), len(report.Results))
}
