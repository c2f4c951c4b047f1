// Package logger builds *slog.Logger values from functional options and adds
// attributes pulled from the request context to every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "formkit"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "form submitted", logger.Fields("name", "mail"))
//
// In development the logger writes debug-level text. Other environments get
// info-level JSON.
package logger
