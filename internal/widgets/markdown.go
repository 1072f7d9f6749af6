package widgets

// IntroMarkdown is the static content of the form_d_intro widget.
// Plain professional markdown: the host renders it verbatim.
func IntroMarkdown() string {
	return `# SEC Form D Filings

**Form D** is the notice companies file with the SEC when they raise capital
through a private offering exempt from registration under **Regulation D**.
It is often the first public signal that a startup, fund or private company
has raised money.

## What a filing contains

- **Issuer**: company name, state of incorporation and principal place of business
- **Offering**: total amount offered and the amount sold to date
- **Security type**: equity, debt, fund interests or other instruments
- **Industry group**: the issuer's self-reported sector
- **Investors**: number of investors and minimum investment accepted

## About this dashboard

The widgets on these tabs are built from the full EDGAR Form D corpus,
aggregated by month, year, security type, industry and state. Amounts are
as reported by issuers and are not adjusted for amendments withdrawn later.

Data from 2009 onward, when electronic filing became mandatory. Figures for
the current month are excluded while filings are still arriving.

*Source: SEC EDGAR. This dashboard is informational and not investment advice.*`
}
