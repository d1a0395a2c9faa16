package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quanta-dev/quanta/pkg/config"
	"github.com/quanta-dev/quanta/pkg/expr"
	qjson "github.com/quanta-dev/quanta/pkg/json"
	"github.com/quanta-dev/quanta/pkg/logger"
	"github.com/quanta-dev/quanta/pkg/policy"
	"github.com/quanta-dev/quanta/pkg/quantity"
	"github.com/quanta-dev/quanta/pkg/registry"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	var configFile string
	var jsonOut bool
	cfg := config.Default()

	root := &cobra.Command{
		Use:   "quanta",
		Short: "Quanta - exact unit algebra engine",
		Long: `Quanta resolves textual unit expressions to exact dimension and scale
vectors, converts between units without accumulating floating drift, and
applies configurable policies when differently-scaled quantities combine.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				loaded, err := config.Load(configFile)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			return logger.Init(logger.Config{
				Level:       cfg.Logging.Level,
				Development: cfg.Logging.Development,
				Encoding:    cfg.Logging.Encoding,
				OutputPaths: cfg.Logging.OutputPaths,
			})
		},
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to YAML configuration file (optional)")
	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "Emit JSON output")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Quanta v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "eval <unit-expression>",
		Short: "Resolve a unit expression to its dimension and scale vectors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(args[0], jsonOut)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "convert <value> <from-unit> <to-unit>",
		Short: "Convert a value between two units of the same dimension",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args[0], args[1], args[2], jsonOut)
		},
	})

	var policyName string
	addCmd := &cobra.Command{
		Use:   "add <quantity> <quantity>",
		Short: "Add two quantities under the configured rescale policy",
		Long: `Add two quantities of the same dimension, e.g.:

  quanta add "1 m" "500 mm" --policy smaller_wins`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := cfg.RescalePolicy()
			if policyName != "" {
				parsed, err := policy.ParsePolicy(policyName)
				if err != nil {
					return err
				}
				p = parsed
			}
			return runAdd(args[0], args[1], p, jsonOut)
		},
	}
	addCmd.Flags().StringVar(&policyName, "policy", "", "Rescale policy (strict, smaller_wins, left_hand_wins, larger_wins)")
	root.AddCommand(addCmd)

	var dimFilter string
	unitsCmd := &cobra.Command{
		Use:   "units",
		Short: "List the unit catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnits(dimFilter, jsonOut)
		},
	}
	unitsCmd.Flags().StringVarP(&dimFilter, "dimension", "d", "", "Only list units of this dimension")
	root.AddCommand(unitsCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runEval(input string, jsonOut bool) error {
	reg := registry.Default()
	r, err := expr.Evaluate(reg, input)
	if err != nil {
		return err
	}

	name := ""
	if d, ok := reg.FindDimensionByVector(r.Dimension); ok {
		name = d.Name
	}

	logger.Debug("evaluated unit expression",
		zap.String("input", input),
		zap.String("dimension", r.Dimension.String()),
		zap.String("scale", r.Scale.String()))

	if jsonOut {
		return qjson.MarshalToWriter(os.Stdout, map[string]interface{}{
			"input":     input,
			"dimension": r.Dimension.String(),
			"scale":     r.Scale.String(),
			"name":      name,
			"rendered":  quantity.Render(reg, r),
		})
	}
	fmt.Printf("expression: %s\n", input)
	fmt.Printf("dimension:  %s\n", r.Dimension)
	if name != "" {
		fmt.Printf("name:       %s\n", name)
	}
	fmt.Printf("scale:      %s\n", r.Scale)
	fmt.Printf("rendered:   %s\n", quantity.Render(reg, r))
	return nil
}

func runConvert(valueStr, from, to string, jsonOut bool) error {
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return fmt.Errorf("bad value %q: %w", valueStr, err)
	}

	out, err := policy.Rescale(registry.Default(), value, from, to)
	if err != nil {
		return err
	}

	if jsonOut {
		return qjson.MarshalToWriter(os.Stdout, map[string]interface{}{
			"value":  out,
			"unit":   to,
			"source": map[string]interface{}{"value": value, "unit": from},
		})
	}
	fmt.Printf("%g %s = %g %s\n", value, from, out, to)
	return nil
}

func runAdd(a, b string, p policy.RescalePolicy, jsonOut bool) error {
	reg := registry.Default()
	qa, err := quantity.Parse(reg, a)
	if err != nil {
		return err
	}
	qb, err := quantity.Parse(reg, b)
	if err != nil {
		return err
	}

	sum, err := qa.Add(qb, p)
	if err != nil {
		return err
	}

	if jsonOut {
		return qjson.MarshalToWriter(os.Stdout, sum)
	}
	fmt.Println(sum)
	return nil
}

func runUnits(dimFilter string, jsonOut bool) error {
	reg := registry.Default()

	type unitRow struct {
		Name    string   `json:"name"`
		Symbols []string `json:"symbols"`
		Scale   string   `json:"scale"`
		Factor  float64  `json:"conversion_factor,omitempty"`
		Offset  float64  `json:"affine_offset,omitempty"`
		System  string   `json:"system"`
	}
	type dimRow struct {
		Name      string    `json:"name"`
		Symbol    string    `json:"symbol"`
		Exponents string    `json:"exponents"`
		Units     []unitRow `json:"units"`
	}

	var rows []dimRow
	for _, d := range reg.Dimensions() {
		if dimFilter != "" && d.Name != dimFilter {
			continue
		}
		row := dimRow{Name: d.Name, Symbol: d.Symbol, Exponents: d.Exponents.String()}
		for _, u := range d.Units {
			ur := unitRow{
				Name:    u.Name,
				Symbols: u.Symbols,
				Scale:   u.Scale.String(),
				System:  u.System.String(),
			}
			if u.HasConversion() {
				ur.Factor = u.ConversionFactor
			}
			if u.HasAffineOffset() {
				ur.Offset = u.AffineOffset
			}
			row.Units = append(row.Units, ur)
		}
		rows = append(rows, row)
	}

	if dimFilter != "" && len(rows) == 0 {
		return fmt.Errorf("unknown dimension %q", dimFilter)
	}

	if jsonOut {
		enc := qjson.NewStreamingEncoder(os.Stdout, true)
		enc.SetPretty(true, "  ")
		for _, row := range rows {
			if err := enc.Encode(row); err != nil {
				return err
			}
		}
		return enc.Close()
	}

	for _, row := range rows {
		fmt.Printf("%s (%s) %s\n", row.Name, row.Symbol, row.Exponents)
		for _, u := range row.Units {
			line := "  " + u.Name
			if len(u.Symbols) > 0 {
				line += " ["
				for i, s := range u.Symbols {
					if i > 0 {
						line += ", "
					}
					line += s
				}
				line += "]"
			}
			line += " scale=" + u.Scale
			if u.Factor != 0 {
				line += fmt.Sprintf(" factor=%g", u.Factor)
			}
			if u.Offset != 0 {
				line += fmt.Sprintf(" offset=%g", u.Offset)
			}
			fmt.Println(line)
		}
	}
	return nil
}
