package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

//go:embed *.json
var fs embed.FS

// DefaultLang is served when nothing better matches
const DefaultLang = "en"

// translations stores flattened keys: "en" -> "contact.submit" -> "Send inquiry"
var (
	translations = make(map[string]map[string]string)
	matcher      = language.NewMatcher([]language.Tag{language.English})
	supported    = []string{DefaultLang}
	mutex        sync.RWMutex
)

// Load initializes the translations from the embedded JSON catalogs and
// rebuilds the Accept-Language matcher from the languages found.
func Load() error {
	entries, err := fs.ReadDir(".")
	if err != nil {
		return fmt.Errorf("failed to read embedded locales: %w", err)
	}

	loaded := make(map[string]map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		lang := strings.TrimSuffix(entry.Name(), ".json")
		content, err := fs.ReadFile(entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read locale file %s: %w", entry.Name(), err)
		}

		var result map[string]interface{}
		if err := json.Unmarshal(content, &result); err != nil {
			return fmt.Errorf("failed to unmarshal locale %s: %w", entry.Name(), err)
		}

		flat := make(map[string]string)
		flatten("", result, flat)
		loaded[lang] = flat
		log.Printf("Loaded locale: %s (%d keys)", lang, len(flat))
	}

	if _, ok := loaded[DefaultLang]; !ok {
		return fmt.Errorf("default locale %q is missing", DefaultLang)
	}

	langs := make([]string, 0, len(loaded))
	for lang := range loaded {
		langs = append(langs, lang)
	}
	// Default first so the matcher falls back to it
	sort.Slice(langs, func(i, j int) bool {
		if langs[i] == DefaultLang || langs[j] == DefaultLang {
			return langs[i] == DefaultLang
		}
		return langs[i] < langs[j]
	})
	tags := make([]language.Tag, 0, len(langs))
	for _, lang := range langs {
		tags = append(tags, language.Make(lang))
	}

	mutex.Lock()
	translations = loaded
	supported = langs
	matcher = language.NewMatcher(tags)
	mutex.Unlock()
	return nil
}

// flatten recursively flattens a nested map into dot-notation keys.
func flatten(prefix string, nested map[string]interface{}, result map[string]string) {
	for k, v := range nested {
		newKey := k
		if prefix != "" {
			newKey = prefix + "." + k
		}

		switch child := v.(type) {
		case map[string]interface{}:
			flatten(newKey, child, result)
		case string:
			result[newKey] = child
		default:
			result[newKey] = fmt.Sprintf("%v", child)
		}
	}
}

// Languages lists the loaded language codes, default first
func Languages() []string {
	mutex.RLock()
	defer mutex.RUnlock()
	return append([]string(nil), supported...)
}

// IsSupported reports whether a catalog exists for lang
func IsSupported(lang string) bool {
	mutex.RLock()
	defer mutex.RUnlock()
	_, ok := translations[lang]
	return ok
}

// Match picks the best loaded language for an Accept-Language header
func Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLang
	}

	mutex.RLock()
	m := matcher
	langs := supported
	mutex.RUnlock()

	_, index, confidence := m.Match(tags...)
	if confidence == language.No || index >= len(langs) {
		return DefaultLang
	}
	return langs[index]
}

// T retrieves a translation for the given key using the language from the context.
// If the key is missing in the target language, it falls back to the default language,
// and then to the key itself.
// Supports simple named variable replacement {name} if args are provided.
func T(ctx context.Context, key string, args ...map[string]interface{}) string {
	return Translate(GetLocale(ctx), key, args...)
}

// Translate retrieves a translation for a specific language code.
func Translate(lang, key string, args ...map[string]interface{}) string {
	mutex.RLock()
	defer mutex.RUnlock()

	if trans, ok := translations[lang]; ok {
		if val, ok := trans[key]; ok {
			return format(val, args...)
		}
	}

	if lang != DefaultLang {
		if trans, ok := translations[DefaultLang]; ok {
			if val, ok := trans[key]; ok {
				return format(val, args...)
			}
		}
	}

	return key
}

// format replaces {var} placeholders with values from args if present.
func format(text string, args ...map[string]interface{}) string {
	if len(args) == 0 {
		return text
	}

	for k, v := range args[0] {
		text = strings.ReplaceAll(text, "{"+k+"}", fmt.Sprintf("%v", v))
	}
	return text
}

type contextKey string

const LocaleContextKey contextKey = "locale"

// WithLocale stores the request language for templates
func WithLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, LocaleContextKey, lang)
}

// GetLocale extracts the locale set by the locale middleware, defaulting to "en".
func GetLocale(ctx context.Context) string {
	if val, ok := ctx.Value(LocaleContextKey).(string); ok && val != "" {
		return val
	}
	return DefaultLang
}
