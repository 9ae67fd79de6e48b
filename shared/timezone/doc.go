// Package timezone pins the application to the business-local wall clock.
//
// Every schedule and booking time in this service is a business-local value;
// no conversion between customer and business timezones is performed. The one
// configured location (APP_TIMEZONE) exists so that "today" and record
// timestamps are computed consistently on whatever host the service runs on.
//
// Use standard IANA names: "UTC", "Europe/Madrid", "America/New_York".
package timezone
