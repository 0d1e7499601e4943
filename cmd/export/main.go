package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/simple-vault/internal/config"
	"github.com/MKhiriev/simple-vault/internal/crypto"
	"github.com/MKhiriev/simple-vault/internal/format"
	"github.com/MKhiriev/simple-vault/internal/logger"
	"github.com/MKhiriev/simple-vault/internal/scratch"
	"github.com/MKhiriev/simple-vault/internal/security"
	"github.com/MKhiriev/simple-vault/internal/service"
	"github.com/MKhiriev/simple-vault/internal/store"
	"github.com/MKhiriev/simple-vault/internal/validators"
	"github.com/MKhiriev/simple-vault/migrations"
	"github.com/MKhiriev/simple-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// consoleAuthenticator approves export operations for the local terminal
// user. Device credential gating belongs to the host application; the CLI
// treats an interactive invocation as consent.
type consoleAuthenticator struct {
	logger *logger.Logger
}

func (a consoleAuthenticator) Authenticate(_ context.Context, operation string) service.AuthResult {
	a.logger.Info().Str("operation", operation).Msg("export approved by local invocation")
	return service.AuthResult{Success: true}
}

func main() {
	printBuildInfo()

	formatFlag := flag.String("format", "json", "export format: json, csv, bitwarden, lastpass, 1password, simple_vault_encrypted")
	vaultsFlag := flag.String("vaults", "", "comma-separated vault ids to export")
	outFlag := flag.String("out", "export.out", "destination file path")
	passwordsFlag := flag.Bool("passwords", false, "include real passwords in the output")
	totpFlag := flag.Bool("totp", false, "include TOTP seeds in the output")
	customFieldsFlag := flag.Bool("custom-fields", false, "include custom fields in the output")
	metadataFlag := flag.Bool("metadata", false, "include timestamps and metadata in the output")
	flag.Parse()

	log := logger.NewLogger("simple-vault-export")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewSQLiteDB(cfg.StorePath)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening vault store")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error migrating vault store")
	}

	cryptoSvc := crypto.NewEnvelopeService()
	manager, err := scratch.NewManager(cfg.ScratchDir, cryptoSvc, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating scratch manager")
	}

	storage := store.NewVaultRepository(db, log)
	exporter := service.NewExportService(
		consoleAuthenticator{logger: log},
		validators.NewExportOptionsValidator(),
		security.NewStorageAuditor(storage, log),
		service.NewScratchAllocator(manager),
		storage,
		format.NewEncoder(cryptoSvc, cfg.ExportedBy),
		log,
	)

	options := models.ExportOptions{
		Format:              models.ExportFormat(*formatFlag),
		VaultIDs:            splitVaults(*vaultsFlag),
		IncludePasswords:    *passwordsFlag,
		IncludeTOTP:         *totpFlag,
		IncludeCustomFields: *customFieldsFlag,
		IncludeMetadata:     *metadataFlag,
		Password:            os.Getenv("SIMPLE_VAULT_EXPORT_PASSPHRASE"),
	}

	result := exporter.Export(log.WithContext(context.Background()), *outFlag, options)
	if !result.Success {
		log.Fatal().Str("reason", result.ErrorMessage).Msg("export failed")
	}

	fmt.Printf("Exported %d account(s) to %s\n", result.ExportedCount, result.FilePath)
	if len(result.SkippedVaultIDs) > 0 {
		fmt.Printf("Skipped vaults: %s\n", strings.Join(result.SkippedVaultIDs, ", "))
	}
}

func splitVaults(s string) []string {
	if s == "" {
		return nil
	}

	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
