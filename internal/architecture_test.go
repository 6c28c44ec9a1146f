package internal_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestTUIImportRestrictions ensures the TUI reaches the game only through the API
func TestTUIImportRestrictions(t *testing.T) {
	allowedPrefixes := []string{
		"soclicker/internal/api",    // Core API only
		"soclicker/internal/log",    // Logging
		"soclicker/internal/theme",  // UI theming
		"soclicker/internal/format", // Number formatting
		"soclicker/internal/config", // Settings file
		"soclicker/internal/tui",    // TUI can import its own subpackages
	}

	forbiddenPrefixes := []string{
		"soclicker/internal/game",     // No session internals
		"soclicker/internal/economy",  // Events come through api aliases
		"soclicker/internal/save",     // No direct save file access
		"soclicker/internal/database", // No direct ledger access
	}

	checkImports(t, "./tui", allowedPrefixes, forbiddenPrefixes)
}

// TestEconomyIsPure ensures the engine depends on nothing else in the module
func TestEconomyIsPure(t *testing.T) {
	checkImports(t, "./economy", []string{"soclicker/internal/economy"}, nil)
}

// TestCoreDoesNotImportTUI ensures nothing below the host imports the TUI
func TestCoreDoesNotImportTUI(t *testing.T) {
	for _, dir := range []string{"./game", "./save", "./database", "./economy", "./api"} {
		checkImports(t, dir, nil, []string{"soclicker/internal/tui"})
	}
}

func checkImports(t *testing.T, packageDir string, allowedPrefixes, forbiddenPrefixes []string) {
	err := filepath.Walk(packageDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		fset := token.NewFileSet()
		node, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", path, err)
			return nil
		}

		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)

			// Only module-internal imports are restricted
			if !strings.HasPrefix(importPath, "soclicker/internal") {
				continue
			}

			for _, forbidden := range forbiddenPrefixes {
				if strings.HasPrefix(importPath, forbidden) {
					t.Errorf("FORBIDDEN import in %s: %s", path, importPath)
				}
			}

			if len(allowedPrefixes) > 0 {
				allowed := false
				for _, prefix := range allowedPrefixes {
					if strings.HasPrefix(importPath, prefix) {
						allowed = true
						break
					}
				}
				if !allowed {
					t.Errorf("DISALLOWED import in %s: %s (not in allowed list)", path, importPath)
				}
			}
		}

		return nil
	})

	if err != nil {
		t.Errorf("Failed to walk directory %s: %v", packageDir, err)
	}
}
