package dao

const Version = "0.3.0"
