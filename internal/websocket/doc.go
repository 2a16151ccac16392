// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

// Package websocket implements the room-based relay used for collaborative
// diagram editing. Each connection joins one room (the diagram ID); frames a
// member sends are relayed to every other member of the same room, and the
// catalog layer pushes post-mutation diagram events into rooms through the
// same hub. The hub relays state, it never stores it: the persisted diagram
// remains last-write-wins regardless of what viewers see in flight.
package websocket
