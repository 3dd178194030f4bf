// Package configs manages winterapi configuration.
//
// Three sources feed the client, in increasing order of specificity:
//
//  1. KeeperSettings: where the encrypted credential store lives (keyring
//     service/account ids, secrets file path, lock timeout). Initialized for
//     the current user at startup; tests override WinterSettings to use
//     temporary paths.
//  2. The optional TOML config file at ~/.winterapi/config.toml, holding
//     defaults such as the program name used when --program is omitted.
//  3. WINTER_API_* environment variables, read once at process start:
//     WINTER_API_USER, WINTER_API_PASSWORD, WINTER_API_PROGRAM,
//     WINTER_API_KEY, and WINTER_API_LOCAL (selects the local test server).
package configs
