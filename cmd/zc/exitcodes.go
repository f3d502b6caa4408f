package main

const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing credentials, bad roster)
	ExitNotFound    = 3 // Item, collection or DOI not found
	ExitAPIError    = 4 // Upstream API failure (Zotero, PubMed, CrossRef, Charité)
)
