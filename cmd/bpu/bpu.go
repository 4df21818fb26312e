package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/bsv-blockchain/go-sdk/transaction"
	"github.com/joho/godotenv"
	"github.com/shruggr/go-bpu/config"
	"github.com/shruggr/go-bpu/idx"
	"github.com/shruggr/go-bpu/mod/ord"
)

var PRESET string
var TXID string
var ORD bool
var PRETTY bool
var RAW bool
var BEEF bool
var VERBOSE bool

func init() {
	wd, _ := os.Getwd()
	godotenv.Load(fmt.Sprintf(`%s/.env`, wd))

	flag.StringVar(&PRESET, "preset", "", "Split preset (defaults to parse.preset)")
	flag.StringVar(&TXID, "txid", "", "Load transactions by id, comma separated")
	flag.BoolVar(&ORD, "ord", false, "Extract ord inscriptions instead of tapes")
	flag.BoolVar(&PRETTY, "pretty", false, "Indent JSON output")
	flag.BoolVar(&RAW, "raw", false, "Include the raw transaction hex")
	flag.BoolVar(&BEEF, "beef", false, "Input is BEEF hex rather than a raw transaction")
	flag.BoolVar(&VERBOSE, "v", false, "Verbose")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [rawtx hex | -]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
}

func readRawtx() (string, error) {
	arg := flag.Arg(0)
	if arg == "" || arg == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		arg = string(b)
	}
	return strings.TrimSpace(arg), nil
}

func decodeTx(rawtx string) (*transaction.Transaction, error) {
	if BEEF {
		return transaction.NewTransactionFromBEEFHex(rawtx)
	}
	return transaction.NewTransactionFromHex(rawtx)
}

func output(v any) {
	enc := json.NewEncoder(os.Stdout)
	if PRETTY {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		log.Fatalf("Failed to encode output: %v", err)
	}
}

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if VERBOSE {
		cfg.Parse.Verbose = true
	}
	services, err := cfg.Initialize(ctx, logger)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}
	defer services.Close()
	ingest := services.Ingest
	ingest.IncludeRaw = RAW

	if ORD {
		var tx *transaction.Transaction
		if TXID != "" {
			tx, err = services.Loader.LoadTx(ctx, TXID)
		} else if rawtx, rerr := readRawtx(); rerr != nil {
			err = rerr
		} else {
			tx, err = decodeTx(rawtx)
		}
		if err != nil {
			log.Fatalf("Failed to load transaction: %v", err)
		}
		bmap := ord.NewBMap(uint64(time.Now().Unix()))
		if err := ord.Handler(tx, bmap, ingest.MaxDepth); err != nil {
			log.Fatal(err)
		}
		output(bmap)
		return
	}

	if TXID != "" {
		results, err := ingest.ParseBatch(ctx, strings.Split(TXID, ","), PRESET)
		if err != nil {
			log.Fatal(err)
		}
		for _, idxCtx := range results {
			output(idxCtx)
		}
		return
	}

	rawtx, err := readRawtx()
	if err != nil {
		log.Fatalf("Failed to read transaction: %v", err)
	}
	var idxCtx *idx.IndexContext
	if BEEF {
		var tx *transaction.Transaction
		if tx, err = decodeTx(rawtx); err != nil {
			log.Fatalf("Failed to decode BEEF: %v", err)
		}
		idxCtx, err = ingest.ParseTx(ctx, tx, PRESET)
	} else {
		idxCtx, err = ingest.ParseHex(ctx, rawtx, PRESET)
	}
	if err != nil {
		log.Fatal(err)
	}
	output(idxCtx)
}
