package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/madpenguin8/Compulations/internal/catalog"
	"github.com/madpenguin8/Compulations/internal/config"
	"github.com/madpenguin8/Compulations/internal/export"
	"github.com/madpenguin8/Compulations/internal/report"
	"github.com/madpenguin8/Compulations/internal/sweep"
	"github.com/madpenguin8/Compulations/internal/tui"
)

var (
	plain    bool
	sets     []string
	siteFlag string
	steps    int
	format   string
)

// main registers the commands and runs the interactive calculator when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:           "compulations",
		Short:         "compressed air engineering calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "disable styled output")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list formulas",
		RunE:  listFormulas,
	}

	calcCmd := &cobra.Command{
		Use:   "calc [formula]",
		Short: "evaluate a formula",
		Args:  cobra.ExactArgs(1),
		RunE:  calcFormula,
	}
	calcCmd.Flags().StringArrayVar(&sets, "set", nil, "parameter value as name=value (repeatable)")
	calcCmd.Flags().StringVar(&siteFlag, "site", "", "site preset name or site yaml file")

	convertCmd := &cobra.Command{
		Use:   "convert [value] [from] [to]",
		Short: "convert a value between units",
		Args:  cobra.ExactArgs(3),
		RunE:  convertValue,
	}

	unitsCmd := &cobra.Command{
		Use:   "units",
		Short: "list convertible units",
		RunE:  listUnits,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [formula] [param] [min] [max]",
		Short: "plot a formula across a parameter range",
		Args:  cobra.ExactArgs(4),
		RunE:  sweepFormula,
	}
	sweepCmd.Flags().IntVar(&steps, "steps", 50, "number of points")
	sweepCmd.Flags().StringVar(&format, "format", "plot", "output format: plot, csv or json")
	sweepCmd.Flags().StringArrayVar(&sets, "set", nil, "parameter value as name=value (repeatable)")
	sweepCmd.Flags().StringVar(&siteFlag, "site", "", "site preset name or site yaml file")

	runCmd := &cobra.Command{
		Use:   "run [worksheet]",
		Short: "evaluate every calculation in a worksheet",
		Args:  cobra.ExactArgs(1),
		RunE:  runWorksheet,
	}

	sitesCmd := &cobra.Command{
		Use:   "sites",
		Short: "list site presets",
		RunE:  listSites,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunInteractive()
		},
	}

	rootCmd.AddCommand(listCmd, calcCmd, convertCmd, unitsCmd, sweepCmd, runCmd, sitesCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		report.New(os.Stderr, plain).Error(err)
		os.Exit(1)
	}
}

func listFormulas(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FORMULA\tUNIT\tDESCRIPTION")
	for _, f := range catalog.New().Formulas() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", f.Name, f.Unit, f.Doc)
	}
	return w.Flush()
}

func calcFormula(cmd *cobra.Command, args []string) error {
	f, err := catalog.New().Get(args[0])
	if err != nil {
		return err
	}
	params, err := resolveParams(f, sets, siteFlag)
	if err != nil {
		return err
	}

	result, err := f.Evaluate(params)
	if err != nil {
		return err
	}

	values := f.Defaults()
	for k, v := range params {
		values[k] = v
	}
	rows := make([]report.Row, 0, len(f.Params)+1)
	for _, p := range f.Params {
		rows = append(rows, report.Row{Label: p.Name, Value: values[p.Name], Unit: p.Unit})
	}
	rows = append(rows, report.Row{Label: "= " + f.Name, Value: result, Unit: f.Unit})

	return report.New(cmd.OutOrStdout(), plain).Result(f.Name, rows)
}

func convertValue(cmd *cobra.Command, args []string) error {
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid value: %s", args[0])
	}
	out, err := catalog.New().Convert(v, args[1], args[2])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n", report.FormatValue(v), args[1], report.FormatValue(out), args[2])
	return nil
}

func listUnits(cmd *cobra.Command, args []string) error {
	reg := catalog.New()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DIMENSION\tUNIT")
	for _, u := range reg.Units() {
		dim, _ := reg.Dimension(u)
		fmt.Fprintf(w, "%s\t%s\n", dim, u)
	}
	return w.Flush()
}

func sweepFormula(cmd *cobra.Command, args []string) error {
	f, err := catalog.New().Get(args[0])
	if err != nil {
		return err
	}
	lo, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid min: %s", args[2])
	}
	hi, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return fmt.Errorf("invalid max: %s", args[3])
	}
	params, err := resolveParams(f, sets, siteFlag)
	if err != nil {
		return err
	}

	res, err := sweep.Run(f, params, args[1], lo, hi, steps)
	if err != nil {
		return err
	}
	if format != "plot" {
		return export.Write(cmd.OutOrStdout(), format, res)
	}
	caption := fmt.Sprintf("%s (%s) vs %s from %g to %g", f.Name, f.Unit, args[1], lo, hi)
	return report.New(cmd.OutOrStdout(), plain).Plot(res, caption)
}

func runWorksheet(cmd *cobra.Command, args []string) error {
	ws, err := config.LoadWorksheet(args[0])
	if err != nil {
		return err
	}
	site, err := ws.ResolveSite()
	if err != nil {
		return err
	}

	rows, err := evaluateWorksheet(catalog.New(), ws, site)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("%s @ %s", args[0], site.Name)
	return report.New(cmd.OutOrStdout(), plain).Result(title, rows)
}

func listSites(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SITE\tALTITUDE\tPSIA\tTEMP\tRH\tLINE")
	for _, name := range config.ListPresets() {
		site := config.GetPreset(name)
		psia, err := site.AmbientPSIA()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%.0f ft\t%.3f\t%.0f °F\t%.0f%%\t%.0f psig\n",
			name, site.AltitudeFt, psia, site.TempF, site.RH*100, site.LinePSIG)
	}
	return w.Flush()
}
