package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/chisel-gen/chisel"
	"github.com/chisel-gen/chisel/assemble"
	"github.com/chisel-gen/chisel/log"
	"github.com/chisel-gen/chisel/manifest"
	"github.com/chisel-gen/chisel/native"
	"github.com/chisel-gen/chisel/tracing"
)

// Flag values for the generate command.
var (
	snapshotPath  string
	configPath    string
	outDir        string
	crossrefPath  string
	traceEndpoint string
	natsURL       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chiselgen",
		Short: "Generate a host API manifest from a native introspection snapshot",
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Assemble the module tree and write the export manifest",
		Run:   runGenerateCommand,
	}
	generateCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "introspection snapshot JSON (required)")
	generateCmd.Flags().StringVar(&configPath, "config", "", "generator config YAML")
	generateCmd.Flags().StringVar(&outDir, "out", "", "output directory (overrides config)")
	generateCmd.Flags().StringVar(&crossrefPath, "crossrefs", "", "documentation cross-reference table JSON")
	generateCmd.Flags().StringVar(&traceEndpoint, "trace-endpoint", "", "OTLP trace collector endpoint")
	generateCmd.Flags().StringVar(&natsURL, "nats-url", "", "publish the manifest to this NATS server")
	generateCmd.MarkFlagRequired("snapshot")

	rootCmd.AddCommand(generateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerateCommand(_ *cobra.Command, _ []string) {
	ctx := context.Background()

	cfg, err := loadConfig(configPath)
	if err != nil {
		log.Fatalln("loading config:", err)
	}
	captionOrder, err := cfg.captionOrder()
	if err != nil {
		log.Fatalln("parsing caption order:", err)
	}
	if outDir == "" {
		outDir = cfg.Output
	}

	if traceEndpoint != "" {
		tp, shutdown, err := tracing.NewProvider(traceEndpoint, "chiselgen")
		if err != nil {
			log.Fatalln("setting up tracing:", err)
		}
		otel.SetTracerProvider(tp)
		defer shutdown()
	}

	snapshot, err := native.LoadSnapshot(snapshotPath)
	if err != nil {
		log.Fatalln("loading snapshot:", err)
	}

	asm := assemble.New(snapshot, assemble.Config{
		ArtifactName: cfg.Artifact.Name,
		CaptionOrder: captionOrder,
	})
	root, err := asm.Build(ctx)
	if err != nil {
		log.Fatalln("assembling module tree:", err)
	}

	registry := chisel.BuildRegistry(root)
	log.Println("indexed", registry.Len(), "declarations")

	if crossrefPath != "" {
		table, err := loadCrossReferences(crossrefPath)
		if err != nil {
			log.Fatalln("loading cross-references:", err)
		}
		chisel.LinkCrossReferences(root, table)
	}

	m := manifest.New(cfg.Artifact.Name, cfg.Artifact.Version, outDir, asm.ProcessedTypes())
	path, err := m.Write(outDir)
	if err != nil {
		log.Fatalln("writing manifest:", err)
	}
	log.Println("wrote", path)

	if natsURL != "" {
		pub, err := manifest.NewPublisher(natsURL, cfg.NATS.Subject)
		if err != nil {
			log.Fatalln("connecting publisher:", err)
		}
		defer pub.Close()
		if err := pub.Publish(ctx, m); err != nil {
			log.Fatalln("publishing manifest:", err)
		}
	}
}
