package outcome

import "context"

type optionKey string

const classifierOptionKey optionKey = "classifier_option"

// WithClassifier returns a context carrying c. CatchingCtx and everything
// built on it use the carried classifier instead of DefaultClassifier.
func WithClassifier(ctx context.Context, c Classifier) context.Context {
	return context.WithValue(ctx, classifierOptionKey, c)
}

// ClassifierFrom returns the classifier carried by ctx, or
// DefaultClassifier when none is set.
func ClassifierFrom(ctx context.Context) Classifier {
	if c, ok := ctx.Value(classifierOptionKey).(Classifier); ok && c != nil {
		return c
	}
	return DefaultClassifier
}
