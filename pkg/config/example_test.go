package config_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ajitpratap0/slugger/pkg/config"
)

// ExampleDefault shows the configuration used when no file is given.
func ExampleDefault() {
	cfg := config.Default()

	fmt.Printf("Path: %s\n", cfg.Data.Path)
	fmt.Printf("Limit: %d\n", cfg.Data.Limit)
	fmt.Printf("Format: %s\n", cfg.Output.Format)

	// Output:
	// Path: Batting.csv
	// Limit: 20
	// Format: text
}

// ExampleLoadFile demonstrates loading a partial configuration file with
// environment variable substitution.
func ExampleLoadFile() {
	dir, err := os.MkdirTemp("", "slugger-config")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	os.Setenv("EXAMPLE_BATTING_FILE", "/data/Batting.csv.zst")
	defer os.Unsetenv("EXAMPLE_BATTING_FILE")

	path := filepath.Join(dir, "slugger.yaml")
	content := "data:\n  path: ${EXAMPLE_BATTING_FILE}\n  limit: 0\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		log.Fatal(err)
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(cfg.Data.Path)
	fmt.Println(cfg.Data.Limit)
	fmt.Println(cfg.Logging.Level)

	// Output:
	// /data/Batting.csv.zst
	// 0
	// warn
}

// ExampleConfig_Validate shows how to validate a configuration
// before using it.
func ExampleConfig_Validate() {
	cfg := config.Default()
	cfg.Output.Format = "xml"

	if err := cfg.Validate(); err != nil {
		fmt.Println(err)
	}

	// Output:
	// config: invalid output.format "xml"
}
