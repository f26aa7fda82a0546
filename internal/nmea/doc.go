// Package nmea decodes RMC, GGA, GNS, GSA and GSV sentences into a single
// navigation snapshot and renders that snapshot as text.
//
// Sentences arrive one at a time with the leading '$' and the checksum
// already removed. Each Decode call merges the non-empty fields it finds
// into the caller's Data and records them in Data.Updated; empty fields
// leave the previous values in place.
package nmea
