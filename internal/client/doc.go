// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the users service.
//
// [App] turns a command and its arguments (create, list, get, update,
// delete) into calls on an [adapter.UsersAPI] and prints every result as
// JSON.
package client
