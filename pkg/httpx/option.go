package httpx

// Option настраивает LoggingRoundTripper.
type Option func(*LoggingRoundTripper)

// WithLogFieldMaxLen ограничивает длину дампа запроса и ответа в логе.
// Ноль снимает ограничение.
func WithLogFieldMaxLen(maxLen int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = max(maxLen, 0)
	}
}

// WithSensitiveDataMasker задаёт маскировщик, через который проходят дампы
// перед записью в лог.
func WithSensitiveDataMasker(masker sensitiveDataMasker) Option {
	return func(rt *LoggingRoundTripper) {
		if masker != nil {
			rt.sensitiveDataMasker = masker
		}
	}
}
