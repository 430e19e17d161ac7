// Package locale loads the embedded UI string catalogues into gotext.
package locale

import (
	"embed"
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when no catalogue exists for the requested one.
const DefaultLanguage = "en"

//go:embed *.po
var catalogues embed.FS

// Init installs the catalogue for lang as gotext's global storage, so
// gotext.Get works anywhere in the program. Unknown languages fall back to
// DefaultLanguage.
func Init(lang string) error {
	data, err := catalogues.ReadFile(lang + ".po")
	if err != nil {
		if lang == DefaultLanguage {
			return fmt.Errorf("load catalogue %q: %w", lang, err)
		}
		lang = DefaultLanguage
		if data, err = catalogues.ReadFile(lang + ".po"); err != nil {
			return fmt.Errorf("load catalogue %q: %w", lang, err)
		}
	}

	po := gotext.NewPo()
	po.Parse(data)

	l := gotext.NewLocale("", lang)
	l.AddTranslator(gotext.GetDomain(), po)
	gotext.SetStorage(l)
	return nil
}
