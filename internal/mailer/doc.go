// Package mailer renders and sends the welcome email for new employees.
//
// Sending goes through an authenticated SMTP submission session: plaintext
// dial, STARTTLS upgrade, LOGIN with the account and app password, one
// message per employee. The standard library SMTP client is used directly;
// there is no third-party mail dependency in this codebase.
package mailer
