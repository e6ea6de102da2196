package model

// Package model defines the client-side data of a conversion attempt: the
// explicit client state, the task snapshot handed to front ends, and the
// mapping from state to visible panels.
