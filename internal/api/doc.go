// Package api provides the LedgerX (FTX Derivatives) REST API client.
//
// REST endpoints:
//   - Production: https://api.ledgerx.com
//
// Every request carries "Authorization: JWT <api key>". List endpoints wrap
// their payload in a {meta, data} envelope and are read one page at a time;
// only the first page (up to the configured limit) is returned.
//
// Monetary fields arrive either as integers counting the currency's smallest
// unit or as decimal strings. Each wire type has a ToModel method that
// normalizes every such field to the exact precision of its currency.
package api
