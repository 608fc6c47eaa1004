// Package news produces and caches the daily entrepreneurship digest
// for the Saguenay region. The digest is regenerated at most once per
// local calendar day; everyone reads the same cached document.
package news

// CacheKey is the single logical cache key in use.
const CacheKey = "saguenay_entrepreneuriat"

// DemoModel tags digests produced without an API credential.
const DemoModel = "demo-no-key"

// Item is one entry of the digest.
type Item struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Place       string `json:"place"`
	Description string `json:"description"`
	Source      string `json:"source"`
}

// Digest is the document stored in the cache row and rendered on the
// news page.
type Digest struct {
	Items []Item `json:"items"`
	Model string `json:"model"`
}

// DemoDigest is the fixed payload served when no API credential is
// configured. It is cached exactly like a real fetch.
func DemoDigest() Digest {
	return Digest{
		Items: []Item{
			{
				Title:       "(DEMO) Forum Startup Saguenay",
				Date:        "2025-10-15",
				Place:       "Centre-ville Saguenay",
				Description: "Rencontres entrepreneurs, kiosques, mini-pitchs.",
				Source:      "https://exemple.local",
			},
			{
				Title:       "(DEMO) Conférence PME & Investisseurs",
				Date:        "2025-11-02",
				Place:       "UQAC",
				Description: "Financement, mentors, réseautage 5 à 7.",
				Source:      "https://exemple.local",
			},
		},
		Model: DemoModel,
	}
}

// unavailableDigest is substituted when the completion service answers
// with something that is not the expected JSON document.
func unavailableDigest(model string) Digest {
	return Digest{
		Items: []Item{
			{
				Title:       "Actualités indisponibles",
				Description: "Erreur de format JSON.",
			},
		},
		Model: model,
	}
}
