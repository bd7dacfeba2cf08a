// Command export writes the stored profile as a vCard file.
//
//	export            writes <Name>.vcf in the current directory
//	export -o out.vcf writes to out.vcf
//	export -o -       writes to stdout
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"VCARD_BACK-END/internal/config"
	"VCARD_BACK-END/internal/logger"
	"VCARD_BACK-END/internal/storage"
	"VCARD_BACK-END/internal/store"
	"VCARD_BACK-END/internal/vcard"
)

func main() {
	out := flag.String("o", "", "output path, - for stdout (default <Name>.vcf)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	kv, err := storage.Open(ctx, cfg.Storage, cfg.GetDSN(), zl)
	if err != nil {
		zl.Fatal("storage unavailable", zap.Error(err))
	}
	defer kv.Close()

	rec := store.New(kv, cfg.Storage.Key, zl).Load(ctx)

	path := *out
	if path == "" {
		path = vcard.Filename(rec.Name)
	}
	if err := write(path, vcard.Serialize(rec)); err != nil {
		zl.Fatal("export failed", zap.String("path", path), zap.Error(err))
	}
	if path != "-" {
		zl.Info("vcard written", zap.String("path", path))
	}
}

func write(path, card string) error {
	if path == "-" {
		_, err := io.WriteString(os.Stdout, card)
		return err
	}
	if err := os.WriteFile(path, []byte(card), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
