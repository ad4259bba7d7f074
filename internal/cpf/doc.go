// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cpf normalizes, validates and formats the Brazilian taxpayer
// identifier (Cadastro de Pessoas Físicas).
//
// A CPF has 11 digits. The last two are check digits computed from the
// first nine with a weighted sum modulo 11. The normalized form (digits only)
// is the key of every candidate record.
package cpf
