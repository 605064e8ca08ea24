// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the server and the client:
// request-scoped user ids, JSON responses, the resty client, JWT handling
// and id generation.
package utils
