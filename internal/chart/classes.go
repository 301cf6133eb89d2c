// Package chart maps application-level terms to ledger names and account
// heads, the lookup the posting engine consumes before any operation is
// constructed.
package chart

import "github.com/bookkeep-dev/bookkeep/internal/book"

// classes is the static account-class registry.
var classes = map[string]book.AccountClass{
	"assets":              {ID: "assets", Name: "Assets", NaturalBalance: book.SideDebit},
	"current-assets":      {ID: "current-assets", ParentID: "assets", Name: "Current Assets", NaturalBalance: book.SideDebit},
	"liabilities":         {ID: "liabilities", Name: "Liabilities", NaturalBalance: book.SideCredit},
	"current-liabilities": {ID: "current-liabilities", ParentID: "liabilities", Name: "Current Liabilities", NaturalBalance: book.SideCredit},
	"equity":              {ID: "equity", Name: "Equity", NaturalBalance: book.SideCredit},
	"revenue":             {ID: "revenue", Name: "Revenue", NaturalBalance: book.SideCredit},
	"expenses":            {ID: "expenses", Name: "Expenses", NaturalBalance: book.SideDebit},
}

// Class returns the account class for id.
func Class(id string) (book.AccountClass, bool) {
	c, ok := classes[id]
	return c, ok
}
