// Package timezone pins every timestamp the back office produces to the hotel's
// local zone.
//
// The zone is read from APP_TIMEZONE when the package is imported and falls back
// to UTC when unset or unknown. Use IANA names such as "UTC", "Asia/Jakarta" or
// "America/New_York".
//
//	now := timezone.Now()
//	due := timezone.StartOfDay(now).AddDate(0, 0, 30)
//	label := timezone.Format(due, "01/02/2006")
package timezone
