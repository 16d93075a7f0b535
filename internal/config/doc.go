// Package config loads and validates asn1view configuration.
//
// Configuration is YAML, read with viper. All values have defaults, so both
// the config file and every key in it are optional:
//
//	dump:
//	  indent_width: 3
//	  hex_width: 16
//	log:
//	  level: info
//	  format: console
//	  outputs: [stderr]
//	  rotation:
//	    enable: false
//	    filename: asn1view.log
//	    max_size_mb: 50
//	    max_backups: 3
//	    max_age_days: 14
//
// Environment variables prefixed with ASN1VIEW_ override file values, e.g.
// ASN1VIEW_LOG_LEVEL=debug.
package config
