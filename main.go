package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"mapwriter/mapio"
	"mapwriter/sceneyaml"
)

var (
	format    = flag.String("f", "standard", "map format: standard or valve220")
	output    = flag.String("o", "out.map", "output map file")
	exporting = flag.Bool("export", false, "omit content flagged omit-from-export")
	verbose   = flag.Bool("v", false, "debug logging")
)

func writeMapFile(scenePath string) (err error) {
	scene, err := os.Open(scenePath)
	if err != nil {
		return err
	}
	defer scene.Close()

	doc, err := sceneyaml.Load(scene)
	if err != nil {
		return err
	}
	world, err := doc.Build()
	if err != nil {
		return err
	}

	out, err := os.Create(*output)
	if err != nil {
		return err
	}
	defer out.Close()

	var backend mapio.MapSerializer
	switch *format {
	case "standard":
		backend = mapio.NewStandardSerializer(out)
	case "valve220":
		backend = mapio.NewValve220Serializer(out)
	default:
		return fmt.Errorf("unknown format: %s", *format)
	}

	writer := mapio.NewNodeWriter(world, backend)
	writer.SetExporting(*exporting)
	if err = writer.WriteMap(); err != nil {
		return err
	}
	log.Infof("wrote %s: %d entities", *output, writer.EntityCount())
	return nil
}

func _main() error {
	if flag.NArg() < 1 {
		log.Print("missing scene file")
		return nil
	}
	return writeMapFile(flag.Arg(0))
}

func main() {
	flag.Parse()
	prefixed := &prefixed.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		ForceFormatting: true,
		ForceColors:     true,
	}
	log.SetFormatter(prefixed)
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	err := _main()
	if err != nil {
		log.Fatal(err)
	}
}
