// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the configuration flags found in args.
//
// Flags:
//
//	-p http port
//	-host http bind host
//	-grpc-address grpc health server address in format [host]:[port]
//	-request-timeout server request timeout (e.g., "15s")
//	-c/-config json file path with configs
//	-log-level log level
//	-posts-capacity size of the in-memory post buffer
//	-tags comma separated scraper tags
//	-limit posts per source and tag
//	-interval scrape interval (e.g., "10m"); zero runs once
//	-server PakSentiment server address for uploads
func ParseFlags(args []string) (*StructuredConfig, error) {
	var grpcServerAddress NetAddress
	var port *int
	var host string
	var requestTimeout time.Duration
	var jsonConfigPath string
	var logLevel string
	var postsCapacity int
	var tags string
	var limit int
	var interval time.Duration
	var serverAddress string

	fs := flag.NewFlagSet("paksentiment", flag.ContinueOnError)
	fs.Func("p", "HTTP port", func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("port must be an integer: %w", err)
		}
		port = &v
		return nil
	})
	fs.StringVar(&host, "host", "", "HTTP bind host")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.IntVar(&postsCapacity, "posts-capacity", 0, "Number of posts kept in memory")
	fs.StringVar(&tags, "tags", "", "Comma separated scraper tags")
	fs.IntVar(&limit, "limit", 0, "Posts per source and tag")
	fs.DurationVar(&interval, "interval", 0, "Scrape interval (e.g., 10m)")
	fs.StringVar(&serverAddress, "server", "", "Server address for uploads")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Server: Server{
			Port:           port,
			Host:           host,
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Posts: Posts{Capacity: postsCapacity},
		},
		Scraper: Scraper{
			Tags:          splitList(tags),
			Limit:         limit,
			Interval:      interval,
			ServerAddress: serverAddress,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > maxPort {
		return errors.New("port number is an integer in 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
