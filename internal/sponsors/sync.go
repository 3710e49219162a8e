package sponsors

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/job-radar/internal/fetch"
	"github.com/jonathan/job-radar/internal/normalize"
	"github.com/jonathan/job-radar/internal/types"
)

// RegisterURL is the public IND register of recognised sponsors for
// regular labour and highly skilled migrants.
const RegisterURL = "https://ind.nl/en/public-register-recognised-sponsors/public-register-regular-labour-and-highly-skilled-migrants"

// FetchRegister downloads the IND register page and extracts the
// company names from its sponsor table.
func FetchRegister(ctx context.Context, opts *fetch.Options) ([]types.SponsorRecord, error) {
	result, err := fetch.URL(ctx, RegisterURL, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch register: %w", err)
	}
	return ParseRegister(result.Body)
}

// ParseRegister parses the register HTML into sponsor records. Duplicate
// normalized names are collapsed to one record.
func ParseRegister(html []byte) ([]types.SponsorRecord, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse register: %w", err)
	}

	seen := make(map[string]bool)
	var records []types.SponsorRecord
	doc.Find("tbody tr th").Each(func(_ int, sel *goquery.Selection) {
		name := strings.TrimSpace(sel.Text())
		if name == "" {
			return
		}
		normalized := normalize.CompanyName(name)
		if normalized == "" || seen[normalized] {
			return
		}
		seen[normalized] = true
		records = append(records, types.SponsorRecord{
			CompanyName:           name,
			CompanyNameNormalized: normalized,
		})
	})

	if len(records) == 0 {
		return nil, fmt.Errorf("no sponsors found in register page")
	}
	return records, nil
}
