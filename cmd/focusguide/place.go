package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/focusguide/internal/geometry"
	"github.com/muurk/focusguide/internal/locator"
	"github.com/muurk/focusguide/internal/placement"
	"github.com/muurk/focusguide/internal/ui"
)

// Place command flags
var (
	targetX, targetY, targetW, targetH float64
	tipW, tipH                         float64
	offsetX, offsetY                   float64
	screenW, screenH                   float64
	platformOffsetY                    float64
	position                           string
	allowOverlap                       bool
	allAnchors                         bool
	placeFormat                        string
	metricsName                        string
	locateTimeout                      time.Duration
)

func init() {
	f := placeCmd.Flags()
	f.Float64Var(&targetX, "x", 0, "Target left edge")
	f.Float64Var(&targetY, "y", 0, "Target top edge")
	f.Float64Var(&targetW, "width", 0, "Target width")
	f.Float64Var(&targetH, "height", 0, "Target height")
	f.Float64Var(&tipW, "tooltip-width", 0, "Tooltip width (0 with --tooltip-height 0: not measured yet)")
	f.Float64Var(&tipH, "tooltip-height", 0, "Tooltip height")
	f.Float64Var(&offsetX, "offset-x", 0, "Horizontal shift applied after clamping")
	f.Float64Var(&offsetY, "offset-y", 0, "Vertical shift applied after clamping")
	f.Float64Var(&screenW, "screen-width", 390, "Screen width")
	f.Float64Var(&screenH, "screen-height", 844, "Screen height")
	f.Float64Var(&platformOffsetY, "platform-offset-y", 0, "Correction added to the measured target Y")
	f.StringVarP(&position, "position", "p", string(placement.DefaultAnchor), "Tooltip anchor (see 'focusguide positions')")
	f.BoolVar(&allowOverlap, "allow-overlap", false, "Let the tooltip touch the target")
	f.BoolVar(&allAnchors, "all", false, "Compute every anchor")
	f.StringVar(&placeFormat, "format", "box", "Output format (box, table, json)")
	f.StringVar(&metricsName, "metrics", "pixel", "Margins to use (pixel, cell)")
	f.DurationVar(&locateTimeout, "timeout", 2*time.Second, "Give up locating the target after this long")

	rootCmd.AddCommand(placeCmd)
	rootCmd.AddCommand(positionsCmd)
}

// placeCmd runs the placement engine on one target
var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Compute a tooltip position",
	Long: `Run the placement engine for a target rectangle and tooltip size and
print the result. The target goes through the same validation and retry
policy as an on-screen element, so a 0x0 target fails to locate.`,
	Example: `  # Tooltip below a button on a phone-sized screen
  focusguide place --x 40 --y 100 --width 120 --height 40 \
    --tooltip-width 200 --tooltip-height 80 --position bottomLeft

  # Compare every anchor
  focusguide place --x 40 --y 100 --width 120 --height 40 \
    --tooltip-width 200 --tooltip-height 80 --all --format table

  # Terminal cells
  focusguide place --metrics cell --screen-width 80 --screen-height 24 \
    --x 2 --y 3 --width 20 --height 3 --tooltip-width 30 --tooltip-height 5`,
	RunE: runPlace,
}

// placeRequest is everything the placement engine needs for one run.
type placeRequest struct {
	Target          geometry.Rect
	Tooltip         *geometry.Size // Nil when not measured
	Anchors         []placement.Anchor
	Config          placement.Config
	Screen          geometry.Size
	PlatformOffsetY float64
}

// placeRow is one computed placement.
type placeRow struct {
	Anchor   placement.Anchor `json:"anchor"`
	Target   geometry.Rect    `json:"target"`
	Top      float64          `json:"top"`
	Left     float64          `json:"left"`
	Opacity  float64          `json:"opacity"`
	MaxWidth float64          `json:"maxWidth"`
	Adjusted bool             `json:"adjusted"` // Clamped or flipped away from the anchor position
}

func runPlace(cmd *cobra.Command, args []string) error {
	req, err := buildPlaceRequest()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), locateTimeout)
	defer cancel()

	p := ui.NewPrinter(cmd.OutOrStdout())
	rows, err := computePlacements(ctx, req)
	if err != nil {
		if placeFormat == "json" {
			return err
		}
		hints := []string{"targets must be finite and not 0x0"}
		p.PrintError("Target not located", err, hints...)
		return fmt.Errorf("locate failed: %w", err)
	}

	switch placeFormat {
	case "json":
		return printPlaceJSON(cmd.OutOrStdout(), rows)
	case "table":
		p.PrintTable(placeTable(rows))
		return nil
	case "box":
		printPlaceBoxes(p, req, rows)
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected box, table, json)", placeFormat)
	}
}

func buildPlaceRequest() (placeRequest, error) {
	metrics, err := parseMetrics(metricsName)
	if err != nil {
		return placeRequest{}, err
	}

	anchors := placement.Anchors
	if !allAnchors {
		a, err := placement.ParseAnchor(position)
		if err != nil {
			return placeRequest{}, err
		}
		anchors = []placement.Anchor{a}
	}

	var tooltip *geometry.Size
	if tipW != 0 || tipH != 0 {
		tooltip = &geometry.Size{Width: tipW, Height: tipH}
	}

	return placeRequest{
		Target:  geometry.NewRect(targetX, targetY, targetW, targetH),
		Tooltip: tooltip,
		Anchors: anchors,
		Config: placement.Config{
			Offset:       geometry.Point{X: offsetX, Y: offsetY},
			AllowOverlap: allowOverlap,
			Metrics:      metrics,
		},
		Screen:          geometry.Size{Width: screenW, Height: screenH},
		PlatformOffsetY: platformOffsetY,
	}, nil
}

func parseMetrics(name string) (placement.Metrics, error) {
	switch strings.ToLower(name) {
	case "", "pixel":
		return placement.DefaultMetrics, nil
	case "cell":
		return placement.CellMetrics, nil
	default:
		return placement.Metrics{}, fmt.Errorf("unknown metrics %q (expected pixel, cell)", name)
	}
}

// computePlacements locates the target through the retry policy, then
// places the tooltip for every requested anchor.
func computePlacements(ctx context.Context, req placeRequest) ([]placeRow, error) {
	measurer := locator.MeasurerFunc(func(h locator.Handle, report func(locator.Measurement)) {
		report(locator.Measured(req.Target))
	})
	loop := locator.NewLoop()
	l := locator.New(measurer, loop, locator.Options{PlatformOffsetY: req.PlatformOffsetY})

	rect, err := locator.LocateSync(ctx, loop, l, "target")
	if err != nil {
		return nil, err
	}

	metrics := req.Config.Metrics
	rows := make([]placeRow, 0, len(req.Anchors))
	for _, a := range req.Anchors {
		res := placement.Place(rect, req.Tooltip, a, req.Config, req.Screen)
		row := placeRow{
			Anchor:   a,
			Target:   rect,
			Top:      res.Top,
			Left:     res.Left,
			Opacity:  res.Opacity,
			MaxWidth: res.MaxWidth,
		}
		if req.Tooltip != nil {
			top, left := placement.Resolve(a, rect, *req.Tooltip, metrics.Margin(req.Config.AllowOverlap))
			row.Adjusted = top+req.Config.Offset.Y != res.Top || left+req.Config.Offset.X != res.Left
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func printPlaceJSON(w io.Writer, rows []placeRow) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(rows) == 1 {
		return enc.Encode(rows[0])
	}
	return enc.Encode(rows)
}

func placeTable(rows []placeRow) ui.Table {
	t := ui.Table{
		Header: []string{"Anchor", "Top", "Left", "Opacity", "Max Width", "Adjusted"},
		Footer: fmt.Sprintf("(%d anchors)", len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.Anchor.String(), num(r.Top), num(r.Left), num(r.Opacity), num(r.MaxWidth), yesNo(r.Adjusted),
		})
	}
	return t
}

func printPlaceBoxes(p *ui.Printer, req placeRequest, rows []placeRow) {
	tooltip := "not measured"
	if req.Tooltip != nil {
		tooltip = req.Tooltip.String()
	}
	p.PrintHeader("Placement", "focusguide place",
		ui.Param{Key: "Target", Value: rows[0].Target.String()},
		ui.Param{Key: "Tooltip", Value: tooltip},
		ui.Param{Key: "Screen", Value: req.Screen.String()},
		ui.Param{Key: "Overlap", Value: yesNo(req.Config.AllowOverlap)},
		ui.Param{Key: "Offset", Value: req.Config.Offset.String()},
	)

	for _, r := range rows {
		details := []ui.Param{
			{Key: "Top", Value: num(r.Top)},
			{Key: "Left", Value: num(r.Left)},
			{Key: "Opacity", Value: num(r.Opacity)},
			{Key: "Max Width", Value: num(r.MaxWidth)},
		}
		if r.Opacity == 0 {
			p.PrintResult(ui.NewWarningResult(r.Anchor.String()+": tooltip hidden", details...).
				AddHint("pass --tooltip-width and --tooltip-height once the tooltip is laid out"))
			continue
		}
		res := ui.NewSuccessResult(r.Anchor.String(), details...)
		if r.Adjusted {
			res.AddDetail("Adjusted", "clamped or flipped to stay on screen")
		}
		p.PrintResult(res)
	}
}

func num(v float64) string {
	return fmt.Sprintf("%g", v)
}

// positionsCmd lists the anchors and their positioning rules
var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "List tooltip anchors",
	Long: `List every tooltip anchor with the formula used for its top-left corner.
m is the gap to the target (negative when overlap is allowed), r the target
rectangle and tw/th the tooltip size.`,
	Run: func(cmd *cobra.Command, args []string) {
		ui.NewPrinter(cmd.OutOrStdout()).PrintTable(positionsTable())
	},
}

func positionsTable() ui.Table {
	t := ui.Table{
		Header: []string{"Anchor", "Top", "Left", "On overflow"},
		Footer: fmt.Sprintf("(%d anchors, default %s)", len(placement.Anchors), placement.DefaultAnchor),
	}
	for _, a := range placement.Anchors {
		top, left := formula(a)
		overflow := "clamp"
		switch {
		case a.FlipsDown():
			overflow = "flip below when above the top edge"
		case a.FlipsUp():
			overflow = "flip above when below the bottom edge"
		}
		t.Rows = append(t.Rows, []string{a.String(), top, left, overflow})
	}
	return t
}

func formula(a placement.Anchor) (top, left string) {
	const (
		above   = "r.y - th - m"
		below   = "r.y + r.h + m"
		middleY = "r.y + r.h/2 - th/2"
		alignL  = "r.x"
		middleX = "r.x + r.w/2 - tw/2"
		alignR  = "r.x + r.w - tw"
	)
	switch a {
	case placement.Top, placement.TopLeft:
		return above, alignL
	case placement.TopCenter:
		return above, middleX
	case placement.TopRight:
		return above, alignR
	case placement.BottomCenter:
		return below, middleX
	case placement.BottomRight:
		return below, alignR
	case placement.Left:
		return middleY, "r.x - tw - m"
	case placement.Right:
		return middleY, "r.x + r.w + m"
	case placement.Center:
		return middleY, middleX
	default:
		return below, alignL
	}
}
