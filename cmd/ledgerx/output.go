package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rickgao/ledgerx-client/internal/amount"
	"github.com/rickgao/ledgerx-client/internal/ledger"
	"github.com/rickgao/ledgerx-client/internal/model"
)

type tickerRow struct {
	ticker model.Ticker
	err    error
}

func newTable(w io.Writer, header string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	return tw
}

func printPositions(w io.Writer, positions []model.Position) error {
	tw := newTable(w, "ID\tCONTRACT\tTYPE\tSIZE\tASSIGNED\tSETTLED")
	for _, p := range positions {
		label := ""
		if p.Contract != nil {
			label = p.Contract.ContractLabel()
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%t\n", p.ID, label, p.Type, p.Size, p.AssignedSize, p.HasSettled)
	}
	return tw.Flush()
}

func printTransactions(w io.Writer, txs []model.Transaction) error {
	tw := newTable(w, "ID\tCREATED\tTYPE\tASSET\tAMOUNT\tNET CHANGE\tSTATE")
	for _, tx := range txs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			tx.ID, formatTime(tx.Created), tx.Type, tx.Asset, fixed(tx.Amount), fixed(tx.NetChange), tx.State)
	}
	return tw.Flush()
}

func printTrades(w io.Writer, trades []model.Trade) error {
	tw := newTable(w, "ID\tCONTRACT\tSIDE\tPRICE\tSIZE\tFEE\tPREMIUM")
	for _, tr := range trades {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n",
			tr.ID, tr.ContractLabel, tr.Side, fixed(tr.FilledPrice), tr.FilledSize, fixed(tr.Fee), fixed(tr.Premium))
	}
	return tw.Flush()
}

func printBalances(w io.Writer, balances ledger.Balances) error {
	tw := newTable(w, "ASSET\tBALANCE")
	for _, code := range balances.Codes() {
		fmt.Fprintf(tw, "%s\t%s\n", code, fixed(balances[code]))
	}
	return tw.Flush()
}

func printTickers(w io.Writer, rows map[uint64]tickerRow) error {
	tw := newTable(w, "CONTRACT\tBID\tASK\tLAST\tVOLUME 24H")
	for _, id := range slices.Sorted(maps.Keys(rows)) {
		row := rows[id]
		if row.err != nil {
			fmt.Fprintf(tw, "%d\terror: %v\t\t\t\n", id, row.err)
			continue
		}
		t := row.ticker
		last := "-"
		if t.LastTrade != nil {
			last = fixed(t.LastTrade.Price)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", id, fixed(t.Bid), fixed(t.Ask), last, t.Volume24h)
	}
	return tw.Flush()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}

// fixed prints d with every fractional digit it carries.
func fixed(d decimal.Decimal) string {
	return d.StringFixed(int32(amount.ScaleOf(d)))
}
