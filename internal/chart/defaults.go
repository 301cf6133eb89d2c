package chart

// DefaultChart returns the default chart entries for a new book. All terms
// post to a single "main" ledger; hosts running per-customer ledgers add
// their own entries.
func DefaultChart() []Entry {
	return []Entry{
		{Term: "cash", Ledger: "main", Account: "Cash", ClassID: "assets"},
		{Term: "bank", Ledger: "main", Account: "Business Checking", ClassID: "assets"},
		{Term: "receivables", Ledger: "main", Account: "Accounts Receivable", ClassID: "current-assets"},
		{Term: "payables", Ledger: "main", Account: "Accounts Payable", ClassID: "current-liabilities"},
		{Term: "capital", Ledger: "main", Account: "Owner's Capital", ClassID: "equity"},
		{Term: "sales", Ledger: "main", Account: "Sales Revenue", ClassID: "revenue"},
		{Term: "expenses", Ledger: "main", Account: "Operating Expenses", ClassID: "expenses"},
	}
}
