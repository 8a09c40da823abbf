package opening

// maxDebitAttempts bounds automatic retries when the store reports a
// transient conflict evaluating the conditional debit. Conflicts leave
// no side effects, so retrying is safe; the bound keeps a persistently
// conflicted row from spinning.
const maxDebitAttempts = 3
