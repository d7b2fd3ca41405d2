// Command ledgerx queries a LedgerX account and prints the results as tables.
//
// Usage:
//
//	ledgerx [-config path] [-env path] <command> [args]
//
// Commands:
//
//	positions            open and settled positions
//	transactions         ledger entries
//	trades               executions
//	balances             per-asset balances derived from transactions
//	ticker <id>          ticker of one contract
//	tickers [-each] <id>...
//	                     tickers of several contracts; -each reports
//	                     failures per contract instead of failing the batch
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/rickgao/ledgerx-client/internal/api"
	"github.com/rickgao/ledgerx-client/internal/auth"
	"github.com/rickgao/ledgerx-client/internal/config"
	"github.com/rickgao/ledgerx-client/internal/version"
)

var errUsage = errors.New("usage: ledgerx [-config path] [-env path] positions|transactions|trades|balances|ticker <id>|tickers [-each] <id>...")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "ledgerx:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("ledgerx", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to config file (defaults apply when empty)")
	envPath := fs.String("env", ".env", "dotenv file loaded before reading config")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	if err := godotenv.Load(*envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", *envPath, err)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log, stderr)
	if err != nil {
		return err
	}
	logger.Debug("starting ledgerx",
		"version", version.String(),
		"base_url", cfg.API.BaseURL,
	)

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}

	cmd, cmdArgs := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "positions":
		positions, err := client.GetPositions(ctx)
		if err != nil {
			return err
		}
		return printPositions(stdout, positions)

	case "transactions":
		txs, err := client.GetTransactions(ctx)
		if err != nil {
			return err
		}
		return printTransactions(stdout, txs)

	case "trades":
		trades, err := client.GetTrades(ctx)
		if err != nil {
			return err
		}
		return printTrades(stdout, trades)

	case "balances":
		balances, err := client.GetBalances(ctx)
		if err != nil {
			return err
		}
		return printBalances(stdout, balances)

	case "ticker":
		if len(cmdArgs) != 1 {
			return errUsage
		}
		id, err := parseContractID(cmdArgs[0])
		if err != nil {
			return err
		}
		ticker, err := client.GetContractTicker(ctx, id)
		if err != nil {
			return err
		}
		return printTickers(stdout, map[uint64]tickerRow{id: {ticker: ticker}})

	case "tickers":
		return runTickers(ctx, client, cmdArgs, stdout, stderr)

	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func runTickers(ctx context.Context, client *api.Client, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tickers", flag.ContinueOnError)
	fs.SetOutput(stderr)
	each := fs.Bool("each", false, "report failures per contract")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	ids := make([]uint64, 0, fs.NArg())
	for _, arg := range fs.Args() {
		id, err := parseContractID(arg)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

	rows := make(map[uint64]tickerRow, len(ids))
	if *each {
		for id, res := range client.GetContractTickersEach(ctx, ids) {
			rows[id] = tickerRow{ticker: res.Value, err: res.Err}
		}
	} else {
		tickers, err := client.GetContractTickers(ctx, ids)
		if err != nil {
			return err
		}
		for id, t := range tickers {
			rows[id] = tickerRow{ticker: t}
		}
	}
	return printTickers(stdout, rows)
}

func loadConfig(path string) (*config.ClientConfig, error) {
	if path != "" {
		return config.LoadAndValidate(path)
	}
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func newClient(cfg *config.ClientConfig, logger *slog.Logger) (*api.Client, error) {
	apiKey := cfg.API.APIKey
	if apiKey == "" && cfg.API.KeyFile != "" {
		creds, err := auth.LoadKeyFile(cfg.API.KeyFile)
		if err != nil {
			return nil, err
		}
		apiKey = creds.APIKey
	}

	return api.NewClient(cfg.API.BaseURL, apiKey,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
		api.WithPageSize(cfg.API.PageSize),
		api.WithCurrencies(cfg.CurrencyTable(), cfg.Currencies.Quote),
	), nil
}

func parseContractID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid contract id %q", s)
	}
	return id, nil
}
