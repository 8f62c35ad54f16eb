// Package i18n provides internationalization support for the courier portal.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":        "Invalid request",
			"error.invalid_request_body":   "Invalid request body",
			"error.internal_error":         "An unexpected error occurred",
			"error.unauthorized":           "Unauthorized",
			"error.forbidden":              "Forbidden",
			"error.not_found":              "Not found",
			"error.rate_limit_exceeded":    "Too many requests, please try again later",
			"error.conflict":               "Conflict",
			"error.invalid_token":          "Invalid or expired token",
			"error.token_required":         "Authentication token is required",
			"error.timeout":                "Request timeout",
			"error.upstream":               "The courier service could not process the request",
			"error.service_unavailable":    "Service temporarily unavailable, please try again later",
			"error.hsn_unavailable":        "HSN code search is unavailable",
			"error.unknown_hsn_code":       "Unknown HSN code",
			"error.weight_exceeds_limit":   "The parcel exceeds the weight limit for this service",
			"error.price_unavailable":      "A price could not be determined for this shipment",
			"error.otp_cooldown":           "Please wait before requesting another OTP",
			"error.invalid_flow_step":      "This step is not allowed at the current stage of login",
			"error.activity_log_disabled":  "Activity log is disabled",
			"error.idempotency_key_reused": "Idempotency-Key was already used for a different request",

			// Success messages
			"success.otp_sent":        "OTP sent",
			"success.shipment_booked": "Shipment booked successfully",
			"success.account_created": "Account created, please log in",
		},
		"hi": {
			// Error messages
			"error.invalid_request":        "अमान्य अनुरोध",
			"error.invalid_request_body":   "अमान्य अनुरोध डेटा",
			"error.internal_error":         "एक अप्रत्याशित त्रुटि हुई",
			"error.unauthorized":           "अनधिकृत",
			"error.forbidden":              "निषिद्ध",
			"error.not_found":              "नहीं मिला",
			"error.rate_limit_exceeded":    "बहुत अधिक अनुरोध, कृपया बाद में पुनः प्रयास करें",
			"error.conflict":               "विरोध",
			"error.invalid_token":          "अमान्य या समाप्त टोकन",
			"error.token_required":         "प्रमाणीकरण टोकन आवश्यक है",
			"error.timeout":                "अनुरोध का समय समाप्त",
			"error.upstream":               "कूरियर सेवा अनुरोध संसाधित नहीं कर सकी",
			"error.service_unavailable":    "सेवा अस्थायी रूप से अनुपलब्ध है, कृपया बाद में पुनः प्रयास करें",
			"error.hsn_unavailable":        "HSN कोड खोज उपलब्ध नहीं है",
			"error.unknown_hsn_code":       "अज्ञात HSN कोड",
			"error.weight_exceeds_limit":   "पार्सल इस सेवा की वजन सीमा से अधिक है",
			"error.price_unavailable":      "इस शिपमेंट का मूल्य निर्धारित नहीं किया जा सका",
			"error.otp_cooldown":           "कृपया दूसरा OTP मांगने से पहले प्रतीक्षा करें",
			"error.invalid_flow_step":      "लॉगिन के इस चरण में यह कदम अनुमत नहीं है",
			"error.activity_log_disabled":  "गतिविधि लॉग अक्षम है",
			"error.idempotency_key_reused": "Idempotency-Key पहले ही किसी अन्य अनुरोध के लिए उपयोग हो चुकी है",

			// Success messages
			"success.otp_sent":        "OTP भेजा गया",
			"success.shipment_booked": "शिपमेंट सफलतापूर्वक बुक हुआ",
			"success.account_created": "खाता बन गया, कृपया लॉग इन करें",
		},
	}
}
