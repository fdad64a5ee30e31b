/*
Package agingsheets publishes QuickBooks accounts-receivable aging exports to a Google Sheets worksheet.

aging-sheets can be used from the command line but is really intended to be run unattended from a cron job
or Windows Task Scheduler entry: each run picks the newest CSV export in a watched folder, parses it into
per-customer aging records and replaces the target range of the configured worksheet with a fresh snapshot.

aging-sheets supports the following commands:

  - upload (also the default when no command is given), to publish the newest aging CSV to the worksheet
  - version, to display the current version

Authentication uses a Google service-account key file, so no interactive login is needed.
*/
package agingsheets
