// Command cadrecon reads a normalized 2D drawing and writes the STEP
// AP214 wireframe reconstructed from its three orthographic views.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/cadrecon/drawingio"
	"github.com/katalvlaran/cadrecon/normalize"
	"github.com/katalvlaran/cadrecon/reconstruct"
)

var (
	inputPath  string
	outputPath string
	skipNorm   bool
	verbose    bool
	cfgFile    string
)

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func newLogger() *zap.Logger {
	if verbose || viper.GetBool("verbose") {
		log, err := zap.NewDevelopment()
		if err != nil {
			fail("building logger: %v", err)
		}
		return log
	}
	return zap.NewNop()
}

func openInput() (*os.File, error) {
	if inputPath == "" || inputPath == "-" {
		return os.Stdin, nil
	}
	return os.Open(inputPath)
}

func openOutput() (*os.File, error) {
	if outputPath == "" || outputPath == "-" {
		return os.Stdout, nil
	}
	return os.Create(outputPath)
}

func runReconstruct(cmd *cobra.Command, args []string) {
	log := newLogger()
	defer log.Sync() //nolint:errcheck

	in, err := openInput()
	if err != nil {
		fail("opening input: %v", err)
	}
	defer in.Close()

	drawing, err := drawingio.Decode(in)
	if err != nil {
		fail("decoding drawing: %v", err)
	}

	if !skipNorm {
		stats := normalize.InPlace(&drawing, normalize.DefaultConfig())
		log.Info("normalized drawing",
			zap.Int("removed_degenerate", stats.RemovedDegenerateEntities),
			zap.Int("inferred_kinds", stats.InferredKinds))
	}

	doc, report, err := reconstruct.Reconstruct(drawing, log)
	if err != nil {
		fail("reconstructing: %v", err)
	}
	for _, w := range report.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", w.Code, w.Message)
	}

	out, err := openOutput()
	if err != nil {
		fail("opening output: %v", err)
	}
	defer out.Close()

	if _, err := out.WriteString(doc); err != nil {
		fail("writing output: %v", err)
	}
}

func main() {
	root := &cobra.Command{
		Use:   "cadrecon",
		Short: "Reconstruct a 3D wireframe from a three-view 2D engineering drawing",
		Run:   runReconstruct,
	}

	root.Flags().StringVarP(&inputPath, "input", "i", "", "input drawing JSON file (default: stdin)")
	root.Flags().StringVarP(&outputPath, "output", "o", "", "output STEP file (default: stdout)")
	root.Flags().BoolVar(&skipNorm, "skip-normalize", false, "skip the drawing normalization pre-pass")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose structured logging")
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.cadrecon.yaml)")

	cobra.OnInitialize(initConfig)

	if err := root.Execute(); err != nil {
		fail("%v", err)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".cadrecon")
		viper.AddConfigPath("$HOME")
	}
	viper.SetEnvPrefix("CADRECON")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig() // config file is optional; flags and env vars still work without one
}
